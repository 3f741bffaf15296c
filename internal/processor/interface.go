package processor

import (
	"context"

	"github.com/fiqrioemry/file-processing-pipeline/internal/models"
)

// Processor runs the full transcription pipeline for one video.
type Processor interface {
	// ProcessFile runs the pipeline on a local video file.
	ProcessFile(ctx context.Context, videoPath string) *models.Result
	// ProcessURL downloads a video and runs the pipeline on it.
	ProcessURL(ctx context.Context, videoURL string) *models.Result
	// ProcessAndStore runs the pipeline and writes transcript, summary
	// and result files into the output directory.
	ProcessAndStore(ctx context.Context, videoPath string) error
}
