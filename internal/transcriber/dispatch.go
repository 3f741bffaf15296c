package transcriber

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fiqrioemry/file-processing-pipeline/internal/models"
	"github.com/fiqrioemry/file-processing-pipeline/internal/retry"
)

// TranscribeAll submits every segment to the engine under the concurrency
// cap and waits for all chunks to reach a terminal state. Results are
// written into a pre-sized slice indexed by chunk ID, so the returned
// order never depends on completion order. A per-chunk failure after all
// retries marks that chunk Failed; only cancellation aborts the whole
// batch.
func (t *implTranscriber) TranscribeAll(ctx context.Context, segments []models.AudioSegment) ([]models.ChunkResult, error) {
	results := make([]models.ChunkResult, len(segments))
	sem := newSemaphore(t.concurrency)
	var wg sync.WaitGroup

	t.logger.Info(ctx, "Transcribing %d segments (concurrency %d)", len(segments), t.concurrency)

	for _, seg := range segments {
		if err := sem.acquire(ctx); err != nil {
			wg.Wait()
			t.releaseRemaining(ctx, segments)
			return nil, err
		}

		wg.Add(1)
		go func(seg models.AudioSegment) {
			defer wg.Done()
			defer sem.release()
			// Each worker owns exactly one result slot, so no lock is
			// needed around the slice.
			results[seg.Window.ChunkID] = t.transcribeOne(ctx, seg)
		}(seg)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		t.releaseRemaining(ctx, segments)
		return nil, err
	}

	return results, nil
}

// transcribeOne runs one chunk to a terminal state: success, or Failed
// after retries are exhausted. The segment file is released once the
// outcome is decided.
func (t *implTranscriber) transcribeOne(ctx context.Context, seg models.AudioSegment) models.ChunkResult {
	defer t.releaseSegment(ctx, seg)

	result := models.ChunkResult{
		ChunkID:   seg.Window.ChunkID,
		StartTime: seg.Window.StartTime,
		EndTime:   seg.Window.EndTime,
		Duration:  seg.Window.Length(),
	}

	var text string
	var confidence float64

	attempts, err := retry.Do(ctx, t.backoff, func() error {
		callCtx, cancel := context.WithTimeout(ctx, t.perCallTimeout)
		defer cancel()

		var callErr error
		text, confidence, callErr = t.engine.Transcribe(callCtx, seg.Path)
		if callErr != nil && callCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
			return fmt.Errorf("%w: %v", ErrTimeout, callErr)
		}
		return callErr
	})
	result.Attempts = attempts

	if err != nil {
		t.logger.Warn(ctx, "Chunk %d failed after %d attempt(s): %v", seg.Window.ChunkID, attempts, err)
		result.Status = models.ChunkFailed
		result.FailReason = err.Error()
		return result
	}

	result.Status = models.ChunkSuccess
	result.Transcript = strings.TrimSpace(text)
	result.Confidence = confidence
	t.logger.Debug(ctx, "Chunk %d transcribed in %d attempt(s)", seg.Window.ChunkID, attempts)
	return result
}

// releaseSegment removes a segment file once its chunk is terminal.
func (t *implTranscriber) releaseSegment(ctx context.Context, seg models.AudioSegment) {
	if err := os.Remove(seg.Path); err != nil && !os.IsNotExist(err) {
		t.logger.Warn(ctx, "Failed to release segment %d (%s): %v", seg.Window.ChunkID, seg.Path, err)
	}
}

// releaseRemaining cleans up segment files that never reached a worker,
// e.g. when the run is cancelled mid-dispatch.
func (t *implTranscriber) releaseRemaining(ctx context.Context, segments []models.AudioSegment) {
	for _, seg := range segments {
		if _, err := os.Stat(seg.Path); err == nil {
			t.releaseSegment(ctx, seg)
		}
	}
}
