package summarizer

import "context"

// Summarizer turns a merged transcript into an LLM-generated summary.
// Consumed by the pipeline as a black box.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
