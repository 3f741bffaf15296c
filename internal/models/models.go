package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ChunkWindow is a planned time slice of the source audio.
// Windows are 0-indexed, ordered by StartTime, and consecutive windows
// share the configured overlap.
type ChunkWindow struct {
	ChunkID   int
	StartTime float64 // seconds from start of audio
	EndTime   float64
}

// Length returns the window duration in seconds.
func (w ChunkWindow) Length() float64 {
	return w.EndTime - w.StartTime
}

func (w ChunkWindow) String() string {
	return fmt.Sprintf("chunk %d [%.2fs - %.2fs]", w.ChunkID, w.StartTime, w.EndTime)
}

// AudioSegment is one extracted chunk file bound to its window.
// The dispatcher owns the file and removes it after the final
// transcription attempt.
type AudioSegment struct {
	Window ChunkWindow
	Path   string
}

// ChunkStatus is the terminal outcome of transcribing one chunk.
type ChunkStatus int

const (
	ChunkSuccess ChunkStatus = iota
	ChunkFailed
)

func (s ChunkStatus) String() string {
	if s == ChunkSuccess {
		return "success"
	}
	return "failed"
}

// MarshalJSON renders the status as its name rather than a bare int.
func (s ChunkStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ChunkResult is the per-chunk transcription outcome. Exactly one result
// exists per planned window, indexed by ChunkID.
type ChunkResult struct {
	ChunkID    int         `json:"chunk_id"`
	StartTime  float64     `json:"start_time"`
	EndTime    float64     `json:"end_time"`
	Duration   float64     `json:"duration"`
	Transcript string      `json:"transcript"`
	Confidence float64     `json:"confidence,omitempty"`
	Status     ChunkStatus `json:"status"`
	FailReason string      `json:"fail_reason,omitempty"`
	Attempts   int         `json:"attempts"`
}

// Transcript is the merged, ordered transcript plus the per-chunk results
// kept for diagnostics. Gaps lists chunk IDs that contributed no text.
type Transcript struct {
	Text   string
	Chunks []ChunkResult
	Gaps   []int
}

// ProcessingStats aggregates counters and timing for one run.
type ProcessingStats struct {
	ChunksAttempted int           `json:"chunks_attempted"`
	ChunksSucceeded int           `json:"chunks_succeeded"`
	ChunksFailed    int           `json:"chunks_failed"`
	AudioDuration   float64       `json:"audio_duration_seconds"`
	WallTime        time.Duration `json:"wall_time"`
}

// Result is the structured outcome of one pipeline run, consumed by
// whatever surface invoked it (watcher, CLI, HTTP layer).
type Result struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message"`
	Transcript   string          `json:"transcript,omitempty"`
	Summary      string          `json:"summary,omitempty"`
	Chunks       []ChunkResult   `json:"chunks,omitempty"`
	Stats        ProcessingStats `json:"processing_stats"`
	ErrorDetails string          `json:"error_details,omitempty"`
}
