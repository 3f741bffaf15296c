package transcriber

import (
	"context"
	"errors"
)

// Failure kinds reported by speech-to-text engines.
var (
	ErrRateLimited  = errors.New("transcription rate limited")
	ErrTimeout      = errors.New("transcription timed out")
	ErrServiceError = errors.New("transcription service error")
	ErrInvalidAudio = errors.New("invalid audio")
)

// IsRetryable reports whether a transcription failure is worth another
// attempt. Rate limits, timeouts and service-side errors are transient;
// bad audio and cancellation are not.
func IsRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled):
		return false
	case errors.Is(err, ErrInvalidAudio):
		return false
	case errors.Is(err, ErrRateLimited), errors.Is(err, ErrTimeout), errors.Is(err, ErrServiceError):
		return true
	default:
		// Unclassified errors (network hiccups and the like) get retried.
		return true
	}
}
