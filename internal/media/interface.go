package media

import "context"

// Extractor converts a source video into a single linear audio stream
// suitable for chunked transcription.
type Extractor interface {
	// ExtractAudio decodes the audio track of videoPath into a 16kHz mono
	// WAV file under destDir and returns its path and duration in seconds.
	ExtractAudio(ctx context.Context, videoPath, destDir string) (string, float64, error)
}
