package transcriber

import (
	"time"

	"github.com/fiqrioemry/file-processing-pipeline/internal/config"
	"github.com/fiqrioemry/file-processing-pipeline/internal/logger"
	"github.com/fiqrioemry/file-processing-pipeline/internal/retry"
)

type implTranscriber struct {
	engine         Engine
	logger         logger.Logger
	concurrency    int
	perCallTimeout time.Duration
	backoff        retry.Config
}

// New creates a new Transcriber instance
func New(engine Engine, cfg config.PipelineConfig, log logger.Logger) Transcriber {
	backoff := retry.DefaultConfig()
	backoff.MaxAttempts = cfg.MaxRetries
	backoff.IsRetryable = IsRetryable

	return &implTranscriber{
		engine:         engine,
		logger:         log,
		concurrency:    cfg.ConcurrencyLimit,
		perCallTimeout: time.Duration(cfg.PerCallTimeoutSeconds * float64(time.Second)),
		backoff:        backoff,
	}
}
