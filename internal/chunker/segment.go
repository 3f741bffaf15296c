package chunker

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fiqrioemry/file-processing-pipeline/internal/models"
)

// CreateSegments cuts one WAV file per window out of the extracted audio.
// Segment files live under destDir and are released by the transcription
// dispatcher once the chunk reaches a terminal state.
func (c *implChunker) CreateSegments(ctx context.Context, audioPath string, windows []models.ChunkWindow, destDir string) ([]models.AudioSegment, error) {
	segments := make([]models.AudioSegment, 0, len(windows))

	for _, w := range windows {
		segPath := filepath.Join(destDir, fmt.Sprintf("chunk_%03d.wav", w.ChunkID))

		// -ss before -i seeks on the input; -t bounds the segment length.
		args := []string{
			"-ss", fmt.Sprintf("%.3f", w.StartTime),
			"-t", fmt.Sprintf("%.3f", w.Length()),
			"-i", audioPath,
			"-ac", "1",
			"-ar", "16000",
			"-c:a", "pcm_s16le",
			"-y",
			segPath,
		}

		if _, err := c.executor.Execute(ctx, "ffmpeg", args...); err != nil {
			return nil, fmt.Errorf("extract segment for %s: %w", w, err)
		}

		segments = append(segments, models.AudioSegment{Window: w, Path: segPath})
	}

	c.logger.Info(ctx, "Created %d audio segments in %s", len(segments), destDir)
	return segments, nil
}
