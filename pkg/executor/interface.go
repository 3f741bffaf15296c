package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// CombinedOutput runs a command and returns stdout and stderr together,
	// even when the command exits non-zero. ffprobe/ffmpeg report media
	// info on stderr, so callers may need the output despite an error.
	CombinedOutput(ctx context.Context, name string, args ...string) (string, error)
}
