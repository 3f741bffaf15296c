package chunker

import (
	"errors"
	"fmt"

	"github.com/fiqrioemry/file-processing-pipeline/internal/models"
)

// ErrInvalidConfiguration indicates chunk parameters that cannot produce
// a valid window sequence.
var ErrInvalidConfiguration = errors.New("invalid chunk configuration")

// Plan computes the ordered, overlapping chunk windows covering
// [0, duration]. Consecutive windows overlap by the configured overlap;
// the final window may be shorter. A trailing window below the minimum
// floor is merged into the previous one instead of being emitted.
func (c *implChunker) Plan(duration float64) ([]models.ChunkWindow, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %.2f", ErrInvalidConfiguration, duration)
	}
	if c.overlap < 0 {
		return nil, fmt.Errorf("%w: overlap must not be negative, got %.2f", ErrInvalidConfiguration, c.overlap)
	}
	if c.chunkLength <= c.overlap {
		return nil, fmt.Errorf("%w: chunk length %.2f must be greater than overlap %.2f",
			ErrInvalidConfiguration, c.chunkLength, c.overlap)
	}

	// Short audio needs no chunking at all.
	if duration <= c.chunkLength {
		return []models.ChunkWindow{{ChunkID: 0, StartTime: 0, EndTime: duration}}, nil
	}

	var windows []models.ChunkWindow
	step := c.chunkLength - c.overlap

	for t := 0.0; t < duration; t += step {
		end := min(t+c.chunkLength, duration)
		windows = append(windows, models.ChunkWindow{
			ChunkID:   len(windows),
			StartTime: t,
			EndTime:   end,
		})
		if end >= duration {
			break
		}
	}

	// Fold a degenerate trailing sliver into its predecessor.
	if n := len(windows); n > 1 && windows[n-1].Length() < c.minWindow {
		windows[n-2].EndTime = windows[n-1].EndTime
		windows = windows[:n-1]
	}

	return windows, nil
}
