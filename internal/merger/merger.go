// Package merger reassembles per-chunk transcripts into one ordered
// transcript, removing the text duplicated by chunk overlap.
package merger

import (
	"strings"

	"github.com/fiqrioemry/file-processing-pipeline/internal/config"
	"github.com/fiqrioemry/file-processing-pipeline/internal/models"
)

// Merger joins chunk transcripts token by token. Adjacent chunks share the
// configured audio overlap, so the merger searches the tail of the running
// output for the longest suffix matching a prefix of the next chunk and
// drops the duplicate.
type Merger struct {
	overlapSeconds float64
	wordsPerSecond float64
	minMatchTokens int
}

// New creates a Merger tuned to the pipeline's overlap and speech-rate
// assumptions.
func New(pipeline config.PipelineConfig, merge config.MergeConfig) *Merger {
	return &Merger{
		overlapSeconds: pipeline.OverlapSeconds,
		wordsPerSecond: merge.WordsPerSecond,
		minMatchTokens: merge.MinMatchTokens,
	}
}

// Merge combines the ordered chunk results into a single transcript.
// Failed chunks contribute no text and are recorded as gaps. The output
// depends only on the result sequence, never on timing.
func (m *Merger) Merge(results []models.ChunkResult) models.Transcript {
	transcript := models.Transcript{Chunks: results}

	var out []string
	lastMerged := -1

	for _, r := range results {
		if r.Status != models.ChunkSuccess {
			transcript.Gaps = append(transcript.Gaps, r.ChunkID)
			continue
		}

		tokens := strings.Fields(r.Transcript)
		if len(tokens) == 0 {
			continue
		}

		if len(out) == 0 {
			out = tokens
			lastMerged = r.ChunkID
			continue
		}

		// Overlap dedup only makes sense between adjacent chunks; after a
		// gap the shared audio is gone, so just append.
		match := 0
		if r.ChunkID == lastMerged+1 {
			match = m.overlapMatch(out, tokens)
		}

		out = append(out, tokens[match:]...)
		lastMerged = r.ChunkID
	}

	transcript.Text = strings.Join(out, " ")
	return transcript
}

// overlapMatch returns the length of the longest suffix of out that
// matches a prefix of next, bounded by the expected number of overlap
// tokens. Matches shorter than the minimum are treated as coincidence
// and ignored.
func (m *Merger) overlapMatch(out, next []string) int {
	limit := m.searchWindow()
	if limit > len(out) {
		limit = len(out)
	}
	if limit > len(next) {
		limit = len(next)
	}

	for k := limit; k >= m.minMatchTokens; k-- {
		if tokensEqual(out[len(out)-k:], next[:k]) {
			return k
		}
	}
	return 0
}

// searchWindow derives the token search bound from the overlap duration
// and the estimated speech rate, with headroom for fast speakers.
func (m *Merger) searchWindow() int {
	window := int(m.overlapSeconds * m.wordsPerSecond * 2)
	if window < m.minMatchTokens {
		window = m.minMatchTokens
	}
	return window
}

func tokensEqual(a, b []string) bool {
	for i := range a {
		if normalizeToken(a[i]) != normalizeToken(b[i]) {
			return false
		}
	}
	return true
}

// normalizeToken lowercases and strips edge punctuation so that
// "Fox," and "fox" compare equal across a chunk boundary.
func normalizeToken(tok string) string {
	return strings.ToLower(strings.Trim(tok, ".,!?;:\"'()[]"))
}
