package rembg

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/url"
	"strconv"
	"strings"
	"time"

	nhttp "github.com/chaos-io/bgremove/util/http"
)

const (
	// DefaultBaseURL is where a locally started inference server
	// (`rembg s`) listens.
	DefaultBaseURL = "http://127.0.0.1:7000"

	removePath = "/api/remove"

	// Inference on large inputs is slow, so the per-call timeout is
	// well above the client default.
	removeTimeout = 5 * time.Minute
)

// ServerEngine talks to a rembg inference server over HTTP. The underlying
// client is constructed once and never mutated afterwards.
type ServerEngine struct {
	baseURL string
	cli     nhttp.IClient
}

func NewServerEngine(baseURL string) *ServerEngine {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &ServerEngine{
		baseURL: strings.TrimRight(baseURL, "/"),
		cli:     nhttp.NewHTTPClient(),
	}
}

/*
	curl -X POST "$BASE_URL/api/remove?model=u2net&a=true&af=240&ab=10&ae=10" \
	  -F "file=@my_image.png" \
	  -o my_image_out.png
*/
func (s *ServerEngine) Remove(ctx context.Context, img []byte, opts Options) ([]byte, error) {
	if len(img) == 0 {
		return nil, fmt.Errorf("empty image payload")
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", "input.png")
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(img); err != nil {
		return nil, fmt.Errorf("write form file: %w", err)
	}
	_ = writer.Close()

	var result []byte
	reqParam := &nhttp.RequestParam{
		RequestURI: s.removeURL(opts),
		Method:     "POST",
		Header:     map[string]string{"Content-Type": writer.FormDataContentType()},
		Body:       body,
		Response:   &result,
		Timeout:    removeTimeout,
	}
	if err := s.cli.DoHTTPRequest(ctx, reqParam); err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	slog.Debug("removed background", "model", opts.Model, "bytes", len(result))

	if len(result) == 0 {
		return nil, fmt.Errorf("engine returned an empty result")
	}
	return result, nil
}

// Ping probes the inference server so the caller can fail up front instead
// of at the first image.
func (s *ServerEngine) Ping(ctx context.Context) error {
	reqParam := &nhttp.RequestParam{
		RequestURI: s.baseURL + "/",
		Method:     "GET",
		Timeout:    5 * time.Second,
	}
	if err := s.cli.DoHTTPRequest(ctx, reqParam); err != nil {
		return fmt.Errorf("inference server unreachable at %s: %w", s.baseURL, err)
	}
	return nil
}

func (s *ServerEngine) removeURL(opts Options) string {
	q := url.Values{}
	q.Set("model", opts.Model)
	if opts.AlphaMatting {
		q.Set("a", "true")
		q.Set("af", strconv.Itoa(opts.ForegroundThreshold))
		q.Set("ab", strconv.Itoa(opts.BackgroundThreshold))
		q.Set("ae", strconv.Itoa(opts.ErodeSize))
	}
	return s.baseURL + removePath + "?" + q.Encode()
}
