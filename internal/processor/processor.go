package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fiqrioemry/file-processing-pipeline/internal/media"
	"github.com/fiqrioemry/file-processing-pipeline/internal/models"
)

// ProcessFile runs the full pipeline on a local video file.
func (p *implProcessor) ProcessFile(ctx context.Context, videoPath string) *models.Result {
	start := time.Now()

	sessionDir, err := p.newSessionDir()
	if err != nil {
		return p.failure(ctx, StageExtracting, err, models.ProcessingStats{}, start)
	}
	defer p.cleanupSession(ctx, sessionDir)

	return p.run(ctx, videoPath, sessionDir, start)
}

// ProcessURL downloads the video first, then runs the same pipeline.
func (p *implProcessor) ProcessURL(ctx context.Context, videoURL string) *models.Result {
	start := time.Now()

	sessionDir, err := p.newSessionDir()
	if err != nil {
		return p.failure(ctx, StageExtracting, err, models.ProcessingStats{}, start)
	}
	defer p.cleanupSession(ctx, sessionDir)

	p.logger.Info(ctx, "Downloading video: %s", videoURL)
	videoPath, err := media.Download(ctx, videoURL, sessionDir)
	if err != nil {
		return p.failure(ctx, StageExtracting, err, models.ProcessingStats{}, start)
	}

	return p.run(ctx, videoPath, sessionDir, start)
}

// run drives the pipeline stages in order. All intermediate artifacts
// live in sessionDir, which the caller removes when the run ends.
func (p *implProcessor) run(ctx context.Context, videoPath, sessionDir string, start time.Time) *models.Result {
	runTimeout := time.Duration(p.cfg.Pipeline.RunTimeoutSeconds * float64(time.Second))
	runCtx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	var stats models.ProcessingStats

	p.logger.Info(runCtx, "Starting pipeline run: %s", videoPath)

	// Extracting
	audioPath, duration, err := p.extractor.ExtractAudio(runCtx, videoPath, sessionDir)
	if err != nil {
		return p.failure(runCtx, StageExtracting, err, stats, start)
	}
	stats.AudioDuration = duration

	// Planning
	windows, err := p.chunker.Plan(duration)
	if err != nil {
		return p.failure(runCtx, StagePlanning, err, stats, start)
	}
	p.logger.Info(runCtx, "Planned %d chunk windows over %.1fs of audio", len(windows), duration)

	// Segmenting
	segments, err := p.chunker.CreateSegments(runCtx, audioPath, windows, sessionDir)
	if err != nil {
		return p.failure(runCtx, StageSegmenting, err, stats, start)
	}

	// Transcribing. The dispatcher resolves every chunk to a terminal
	// state before returning; only cancellation aborts it.
	results, err := p.transcriber.TranscribeAll(runCtx, segments)
	if err != nil {
		return p.failure(runCtx, StageTranscribing, err, stats, start)
	}

	stats.ChunksAttempted = len(results)
	for _, r := range results {
		if r.Status == models.ChunkSuccess {
			stats.ChunksSucceeded++
		} else {
			stats.ChunksFailed++
		}
	}
	if stats.ChunksSucceeded == 0 {
		return p.failure(runCtx, StageTranscribing,
			fmt.Errorf("no chunk transcribed successfully (%d attempted)", stats.ChunksAttempted),
			stats, start)
	}

	// Merging
	transcript := p.merger.Merge(results)
	if len(transcript.Gaps) > 0 {
		p.logger.Warn(runCtx, "Transcript has %d gap(s) from failed chunks: %v", len(transcript.Gaps), transcript.Gaps)
	}

	stats.WallTime = time.Since(start)

	result := &models.Result{
		Success:    true,
		Message:    "processing completed",
		Transcript: transcript.Text,
		Chunks:     transcript.Chunks,
		Stats:      stats,
	}
	if stats.ChunksFailed > 0 {
		result.Message = fmt.Sprintf("processing completed with %d failed chunk(s)", stats.ChunksFailed)
	}

	// Summarization is best-effort: a missing summary never fails a run
	// that produced a transcript.
	if p.summarizer != nil {
		summary, err := p.summarizer.Summarize(runCtx, transcript.Text)
		if err != nil {
			p.logger.Warn(runCtx, "Summarization failed: %v", err)
		} else {
			result.Summary = summary
		}
	}

	p.logger.Info(runCtx, "Pipeline run %s: %d/%d chunks in %s",
		StageDone, stats.ChunksSucceeded, stats.ChunksAttempted, stats.WallTime.Round(time.Millisecond))
	return result
}

// failure builds the terminal failure result for a run, naming the stage
// it died in. Context errors are translated into cancellation/timeout
// reasons.
func (p *implProcessor) failure(ctx context.Context, stage Stage, err error, stats models.ProcessingStats, start time.Time) *models.Result {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		err = fmt.Errorf("run timeout: %w", err)
	case errors.Is(err, context.Canceled):
		err = fmt.Errorf("run cancelled: %w", err)
	}

	runErr := &RunError{Stage: stage, Err: err}
	stats.WallTime = time.Since(start)

	p.logger.Error(ctx, "Pipeline run failed: %v", runErr)

	return &models.Result{
		Success:      false,
		Message:      fmt.Sprintf("processing failed during %s", stage),
		ErrorDetails: runErr.Error(),
		Stats:        stats,
	}
}

// newSessionDir creates an isolated temp dir for one run's artifacts.
func (p *implProcessor) newSessionDir() (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp root: %w", err)
	}
	dir, err := os.MkdirTemp(p.cfg.Paths.Temp, "run-*")
	if err != nil {
		return "", fmt.Errorf("create session dir: %w", err)
	}
	return dir, nil
}

// cleanupSession releases everything a run left behind, regardless of
// how the run ended.
func (p *implProcessor) cleanupSession(ctx context.Context, sessionDir string) {
	if err := os.RemoveAll(sessionDir); err != nil {
		p.logger.Warn(ctx, "Failed to clean up session dir %s: %v", sessionDir, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up session dir: %s", sessionDir)
	}
}
