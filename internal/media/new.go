package media

import (
	"github.com/fiqrioemry/file-processing-pipeline/internal/logger"
	"github.com/fiqrioemry/file-processing-pipeline/pkg/executor"
)

type implExtractor struct {
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Extractor instance
func New(exec executor.Executor, log logger.Logger) Extractor {
	return &implExtractor{
		executor: exec,
		logger:   log,
	}
}
