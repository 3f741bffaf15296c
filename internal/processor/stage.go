package processor

import "fmt"

// Stage identifies where in the pipeline a run currently is, or where it
// failed. Stages advance strictly in order; only Transcribing fans out
// internally.
type Stage int

const (
	StageExtracting Stage = iota
	StagePlanning
	StageSegmenting
	StageTranscribing
	StageMerging
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageExtracting:
		return "extracting"
	case StagePlanning:
		return "planning"
	case StageSegmenting:
		return "segmenting"
	case StageTranscribing:
		return "transcribing"
	case StageMerging:
		return "merging"
	case StageDone:
		return "done"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// RunError is a whole-run-fatal failure carrying the stage it happened in.
type RunError struct {
	Stage Stage
	Err   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
