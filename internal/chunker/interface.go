package chunker

import (
	"context"

	"github.com/fiqrioemry/file-processing-pipeline/internal/models"
)

// Chunker plans overlapping chunk windows over an audio stream and
// extracts one segment file per window.
type Chunker interface {
	// Plan returns the ordered chunk windows covering [0, duration].
	Plan(duration float64) ([]models.ChunkWindow, error)
	// CreateSegments extracts one audio file per window into destDir.
	CreateSegments(ctx context.Context, audioPath string, windows []models.ChunkWindow, destDir string) ([]models.AudioSegment, error)
}
