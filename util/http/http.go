package http

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/http.go -package=mocks . IClient
type IClient interface {
	DoHTTPRequest(ctx context.Context, requestParam *RequestParam) error
}

type RequestParam struct {
	RequestURI string
	Method     string
	Header     map[string]string
	// Body may be an io.Reader, []byte, or any JSON-marshalable value.
	Body interface{}
	// Response receives the reply body. A *[]byte gets the raw bytes
	// (image payloads); anything else is unmarshaled from JSON.
	Response interface{}

	Timeout time.Duration
}
