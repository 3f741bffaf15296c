package summarizer

import (
	"github.com/fiqrioemry/file-processing-pipeline/internal/config"
	"github.com/fiqrioemry/file-processing-pipeline/internal/logger"
)

type implSummarizer struct {
	apiKeys    []string
	currentKey int
	logger     logger.Logger
	model      string
}

// New creates a Summarizer that rotates through the supplied Gemini API keys.
func New(cfg config.GeminiConfig, log logger.Logger) Summarizer {
	return &implSummarizer{
		apiKeys: cfg.APIKeys,
		logger:  log,
		model:   cfg.Model,
	}
}
