package chunker

import (
	"github.com/fiqrioemry/file-processing-pipeline/internal/config"
	"github.com/fiqrioemry/file-processing-pipeline/internal/logger"
	"github.com/fiqrioemry/file-processing-pipeline/pkg/executor"
)

type implChunker struct {
	chunkLength float64 // seconds
	overlap     float64
	minWindow   float64
	executor    executor.Executor
	logger      logger.Logger
}

// New creates a new Chunker instance
func New(cfg config.PipelineConfig, exec executor.Executor, log logger.Logger) Chunker {
	return &implChunker{
		chunkLength: cfg.ChunkLengthSeconds,
		overlap:     cfg.OverlapSeconds,
		minWindow:   cfg.MinWindowSeconds,
		executor:    exec,
		logger:      log,
	}
}
