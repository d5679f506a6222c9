package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/chaos-io/bgremove/remove"
	"github.com/chaos-io/bgremove/remove/rembg"
	"github.com/chaos-io/bgremove/util"
)

const defaultOutputDir = "./processadas"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("Background Remover (high quality)")
	fmt.Println(strings.Repeat("=", 45))

	engine := rembg.NewServerEngine(rembg.DefaultBaseURL)
	if err := engine.Ping(ctx); err != nil {
		fmt.Printf("Missing dependency: %v\n", err)
		fmt.Println("Hint: start the inference server with `rembg s`")
		return
	}

	proc := remove.NewProcessor(remove.DefaultConfig(), engine)
	runMenu(ctx, proc)
}

func runMenu(ctx context.Context, proc *remove.Processor) {
	lines := readLines()

	for {
		fmt.Println("\nChoose an option:")
		fmt.Println("1. Process a single image")
		fmt.Println("2. Process a directory")
		fmt.Println("3. Exit")

		choice, ok := prompt(ctx, lines, "\nOption (1-3): ")
		if !ok {
			fmt.Println("\nExiting...")
			return
		}

		switch choice {
		case "1":
			processSingle(ctx, proc, lines)
		case "2":
			processDirectory(ctx, proc, lines)
		case "3":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Invalid option, enter 1, 2 or 3.")
		}

		if ctx.Err() != nil {
			fmt.Println("\nExiting...")
			return
		}
	}
}

func processSingle(ctx context.Context, proc *remove.Processor, lines <-chan string) {
	inputPath, ok := prompt(ctx, lines, "Input image path: ")
	if !ok {
		return
	}
	if inputPath == "" {
		fmt.Println("Path cannot be empty!")
		return
	}

	if util.IsURL(inputPath) {
		tmp, err := util.DownloadToTemp(inputPath)
		if err != nil {
			fmt.Printf("Download failed: %v\n", err)
			return
		}
		defer func() {
			_ = os.Remove(tmp)
		}()
		inputPath = tmp
	}

	outputPath, ok := prompt(ctx, lines, "Output path (Enter for automatic): ")
	if !ok {
		return
	}
	if outputPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outputPath = base + remove.DefaultSuffix + ".png"
	}

	if err := proc.Remove(ctx, inputPath, outputPath); err != nil {
		fmt.Printf("Processing failed: %v\n", err)
		return
	}
	fmt.Printf("Done! Image saved to: %s\n", outputPath)
}

func processDirectory(ctx context.Context, proc *remove.Processor, lines <-chan string) {
	inputDir, ok := prompt(ctx, lines, "Input directory: ")
	if !ok {
		return
	}
	if inputDir == "" {
		fmt.Println("Directory cannot be empty!")
		return
	}

	outputDir, ok := prompt(ctx, lines, fmt.Sprintf("Output directory (Enter for %q): ", defaultOutputDir))
	if !ok {
		return
	}
	if outputDir == "" {
		outputDir = defaultOutputDir
	}

	tally, err := proc.RemoveDir(ctx, inputDir, outputDir)
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Println("\nInterrupted.")
	case err != nil:
		fmt.Printf("Batch failed: %v\n", err)
		return
	}

	total := tally.Total()
	fmt.Println("\nBatch finished:")
	fmt.Printf("  succeeded: %d/%d\n", tally.Succeeded, total)
	fmt.Printf("  failed:    %d/%d\n", tally.Failed, total)
	if tally.Succeeded > 0 {
		fmt.Printf("Processed images saved to: %s\n", outputDir)
	}
}

// readLines feeds stdin lines through a channel so prompts can observe
// cancellation while the read blocks.
func readLines() <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			ch <- strings.TrimSpace(scanner.Text())
		}
	}()
	return ch
}

func prompt(ctx context.Context, lines <-chan string, label string) (string, bool) {
	fmt.Print(label)
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-lines:
		if !ok {
			return "", false
		}
		return line, true
	}
}
