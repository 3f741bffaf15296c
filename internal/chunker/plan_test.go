package chunker

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/fiqrioemry/file-processing-pipeline/internal/config"
	"github.com/fiqrioemry/file-processing-pipeline/internal/logger"
	"github.com/fiqrioemry/file-processing-pipeline/internal/models"
)

func newTestChunker(chunkLength, overlap, minWindow float64) Chunker {
	return New(config.PipelineConfig{
		ChunkLengthSeconds: chunkLength,
		OverlapSeconds:     overlap,
		MinWindowSeconds:   minWindow,
	}, nil, logger.Nop())
}

func TestPlanReferenceWindows(t *testing.T) {
	c := newTestChunker(90, 15, 1)

	windows, err := c.Plan(200)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	want := []models.ChunkWindow{
		{ChunkID: 0, StartTime: 0, EndTime: 90},
		{ChunkID: 1, StartTime: 75, EndTime: 165},
		{ChunkID: 2, StartTime: 150, EndTime: 200},
	}

	if len(windows) != len(want) {
		t.Fatalf("Plan() returned %d windows, want %d: %v", len(windows), len(want), windows)
	}
	for i, w := range windows {
		if w != want[i] {
			t.Errorf("window %d = %v, want %v", i, w, want[i])
		}
	}
}

func TestPlanShortAudioSingleWindow(t *testing.T) {
	c := newTestChunker(90, 15, 1)

	windows, err := c.Plan(45)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if len(windows) != 1 {
		t.Fatalf("Plan() returned %d windows, want 1", len(windows))
	}
	if windows[0].StartTime != 0 || windows[0].EndTime != 45 {
		t.Errorf("window = %v, want [0, 45]", windows[0])
	}
}

func TestPlanMergesTrailingSliver(t *testing.T) {
	// With no overlap, a 90.5s stream would yield a 0.5s trailing window,
	// which is below the 1s floor and must be folded into its predecessor.
	c := newTestChunker(90, 0, 1)

	windows, err := c.Plan(90.5)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if len(windows) != 1 {
		t.Fatalf("Plan() returned %d windows, want 1: %v", len(windows), windows)
	}
	if windows[0].EndTime != 90.5 {
		t.Errorf("merged window end = %v, want 90.5", windows[0].EndTime)
	}
}

func TestPlanInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name        string
		chunkLength float64
		overlap     float64
		duration    float64
	}{
		{name: "zero duration", chunkLength: 90, overlap: 15, duration: 0},
		{name: "negative duration", chunkLength: 90, overlap: 15, duration: -5},
		{name: "overlap equals chunk length", chunkLength: 15, overlap: 15, duration: 100},
		{name: "overlap exceeds chunk length", chunkLength: 10, overlap: 15, duration: 100},
		{name: "negative overlap", chunkLength: 90, overlap: -1, duration: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestChunker(tt.chunkLength, tt.overlap, 1)
			_, err := c.Plan(tt.duration)
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("Plan() error = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestPlanCoversDurationWithoutGaps(t *testing.T) {
	tests := []struct {
		name        string
		chunkLength float64
		overlap     float64
		duration    float64
	}{
		{"long stream", 90, 15, 3600},
		{"no overlap", 60, 0, 500},
		{"large overlap", 30, 25, 200},
		{"fractional duration", 90, 15, 247.3},
		{"barely two chunks", 90, 15, 91},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestChunker(tt.chunkLength, tt.overlap, 1)
			windows, err := c.Plan(tt.duration)
			if err != nil {
				t.Fatalf("Plan() error = %v", err)
			}

			if windows[0].StartTime != 0 {
				t.Errorf("first window starts at %v, want 0", windows[0].StartTime)
			}
			last := windows[len(windows)-1]
			if math.Abs(last.EndTime-tt.duration) > 1e-9 {
				t.Errorf("last window ends at %v, want %v", last.EndTime, tt.duration)
			}

			for i, w := range windows {
				if w.ChunkID != i {
					t.Errorf("window %d has ChunkID %d", i, w.ChunkID)
				}
				if w.EndTime <= w.StartTime {
					t.Errorf("window %d is empty: %v", i, w)
				}
				if i == 0 {
					continue
				}
				prev := windows[i-1]
				if w.StartTime < prev.StartTime {
					t.Errorf("windows out of order at %d: %v after %v", i, w, prev)
				}
				// No gap: each window must begin at or before the previous end.
				if w.StartTime > prev.EndTime {
					t.Errorf("gap between %v and %v", prev, w)
				}
				// Interior pairs overlap by exactly the configured amount.
				if i < len(windows)-1 {
					got := prev.EndTime - w.StartTime
					if math.Abs(got-tt.overlap) > 1e-9 {
						t.Errorf("overlap between %v and %v = %v, want %v", prev, w, got, tt.overlap)
					}
				}
			}
		})
	}
}

func TestCreateSegmentsInvokesFFmpegPerWindow(t *testing.T) {
	exec := &fakeExecutor{}
	c := New(config.PipelineConfig{
		ChunkLengthSeconds: 90,
		OverlapSeconds:     15,
		MinWindowSeconds:   1,
	}, exec, logger.Nop())

	windows := []models.ChunkWindow{
		{ChunkID: 0, StartTime: 0, EndTime: 90},
		{ChunkID: 1, StartTime: 75, EndTime: 165},
	}

	segments, err := c.CreateSegments(context.Background(), "audio.wav", windows, t.TempDir())
	if err != nil {
		t.Fatalf("CreateSegments() error = %v", err)
	}
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	if len(exec.calls) != 2 {
		t.Fatalf("executed %d commands, want 2", len(exec.calls))
	}
	for i, seg := range segments {
		if seg.Window != windows[i] {
			t.Errorf("segment %d window = %v, want %v", i, seg.Window, windows[i])
		}
		if seg.Path == "" {
			t.Errorf("segment %d has empty path", i)
		}
	}
}

type fakeExecutor struct {
	calls [][]string
	err   error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return "", f.err
}

func (f *fakeExecutor) CombinedOutput(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return "", f.err
}
