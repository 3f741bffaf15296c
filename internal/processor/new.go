package processor

import (
	"github.com/fiqrioemry/file-processing-pipeline/internal/chunker"
	"github.com/fiqrioemry/file-processing-pipeline/internal/config"
	"github.com/fiqrioemry/file-processing-pipeline/internal/logger"
	"github.com/fiqrioemry/file-processing-pipeline/internal/media"
	"github.com/fiqrioemry/file-processing-pipeline/internal/merger"
	"github.com/fiqrioemry/file-processing-pipeline/internal/summarizer"
	"github.com/fiqrioemry/file-processing-pipeline/internal/transcriber"
)

type implProcessor struct {
	cfg         *config.Config
	extractor   media.Extractor
	chunker     chunker.Chunker
	transcriber transcriber.Transcriber
	merger      *merger.Merger
	summarizer  summarizer.Summarizer
	logger      logger.Logger
}

// New creates a new Processor instance. The summarizer may be nil, in
// which case runs complete without a summary.
func New(
	cfg *config.Config,
	extractor media.Extractor,
	chk chunker.Chunker,
	trans transcriber.Transcriber,
	mrg *merger.Merger,
	summ summarizer.Summarizer,
	log logger.Logger,
) Processor {
	return &implProcessor{
		cfg:         cfg,
		extractor:   extractor,
		chunker:     chk,
		transcriber: trans,
		merger:      mrg,
		summarizer:  summ,
		logger:      log,
	}
}
