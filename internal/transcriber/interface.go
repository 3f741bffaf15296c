package transcriber

import (
	"context"

	"github.com/fiqrioemry/file-processing-pipeline/internal/models"
)

// Engine is the external speech-to-text capability. Implementations must
// classify failures with the sentinel errors in errors.go so the
// dispatcher can tell transient failures from permanent ones.
type Engine interface {
	Transcribe(ctx context.Context, audioPath string) (text string, confidence float64, err error)
}

// Transcriber fans segments out to the Engine under a concurrency cap and
// returns one terminal ChunkResult per segment, ordered by chunk ID.
type Transcriber interface {
	TranscribeAll(ctx context.Context, segments []models.AudioSegment) ([]models.ChunkResult, error)
}
