package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fiqrioemry/file-processing-pipeline/internal/logger"
)

// videoExtensions lists the container formats handed to the pipeline.
var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".mkv":  true,
	".webm": true,
	".m4v":  true,
	".flv":  true,
}

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start monitors the input directory and dispatches each new video to
// the handler, capping the number of concurrently processed videos.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s (max concurrent runs: %d)", w.inputDir, w.maxConcurrent)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing runs to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create == fsnotify.Create {
				if err := w.handleCreate(ctx, event.Name); err != nil {
					return err
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// handleCreate dispatches one new file to the handler under the
// concurrency cap.
func (w *implWatcher) handleCreate(ctx context.Context, path string) error {
	if !isVideoFile(path) {
		w.logger.Debug(ctx, "Ignoring non-video file: %s", path)
		return nil
	}

	w.logger.Info(ctx, "New video detected: %s", path)

	if err := waitForStableSize(ctx, path); err != nil {
		w.logger.Warn(ctx, "File %s never stabilized: %v", path, err)
		return nil
	}

	select {
	case w.semaphore <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.semaphore }()

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()

	return nil
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// waitForStableSize polls until the file size stops changing, so the
// pipeline never reads a video that is still being copied in.
func waitForStableSize(ctx context.Context, path string) error {
	const (
		interval    = 500 * time.Millisecond
		maxAttempts = 60
	)

	var lastSize int64 = -1
	for range maxAttempts {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat file: %w", err)
		}
		if info.Size() == lastSize && info.Size() > 0 {
			return nil
		}
		lastSize = info.Size()
	}

	return fmt.Errorf("file size still changing after %d checks", maxAttempts)
}

func isVideoFile(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}
