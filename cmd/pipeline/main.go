package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fiqrioemry/file-processing-pipeline/internal/chunker"
	"github.com/fiqrioemry/file-processing-pipeline/internal/config"
	"github.com/fiqrioemry/file-processing-pipeline/internal/logger"
	"github.com/fiqrioemry/file-processing-pipeline/internal/media"
	"github.com/fiqrioemry/file-processing-pipeline/internal/merger"
	"github.com/fiqrioemry/file-processing-pipeline/internal/models"
	"github.com/fiqrioemry/file-processing-pipeline/internal/processor"
	"github.com/fiqrioemry/file-processing-pipeline/internal/summarizer"
	"github.com/fiqrioemry/file-processing-pipeline/internal/transcriber"
	"github.com/fiqrioemry/file-processing-pipeline/internal/watcher"
	"github.com/fiqrioemry/file-processing-pipeline/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	videoFile := flag.String("file", "", "process a single video file and exit")
	videoURL := flag.String("url", "", "download and process a video URL and exit")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	proc := buildProcessor(cfg, log)

	// One-shot modes print the structured result and exit.
	if *videoFile != "" || *videoURL != "" {
		runOnce(ctx, proc, *videoFile, *videoURL)
		return
	}

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	w, err := watcher.New(cfg.Paths.Input, proc.ProcessAndStore, log, cfg.Performance.MaxConcurrentRuns)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Video transcription pipeline is ready")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Chunks: %.0fs with %.0fs overlap, concurrency %d",
		cfg.Pipeline.ChunkLengthSeconds, cfg.Pipeline.OverlapSeconds, cfg.Pipeline.ConcurrencyLimit)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()
}

// buildProcessor wires the pipeline components together.
func buildProcessor(cfg *config.Config, log logger.Logger) processor.Processor {
	exec := executor.New()

	extractor := media.New(exec, log)
	chk := chunker.New(cfg.Pipeline, exec, log)
	engine := transcriber.NewOpenAIEngine(cfg.OpenAI, log)
	trans := transcriber.New(engine, cfg.Pipeline, log)
	mrg := merger.New(cfg.Pipeline, cfg.Merge)

	var summ summarizer.Summarizer
	if len(cfg.Gemini.APIKeys) > 0 {
		summ = summarizer.New(cfg.Gemini, log)
	}

	return processor.New(cfg, extractor, chk, trans, mrg, summ, log)
}

// runOnce processes a single file or URL and prints the result as JSON.
func runOnce(ctx context.Context, proc processor.Processor, videoFile, videoURL string) {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var result *models.Result
	if videoURL != "" {
		result = proc.ProcessURL(ctx, videoURL)
	} else {
		result = proc.ProcessFile(ctx, videoFile)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if !result.Success {
		os.Exit(1)
	}
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
