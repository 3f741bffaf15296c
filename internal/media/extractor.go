package media

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// ErrUnsupportedFormat indicates the source has no decodable audio track.
	ErrUnsupportedFormat = errors.New("unsupported media format")
	// ErrCorruptMedia indicates the source could not be read or probed.
	ErrCorruptMedia = errors.New("corrupt media")
)

// ExtractAudio extracts the audio track from a video file and converts it
// to 16kHz mono WAV, the format speech-to-text services work best with.
func (e *implExtractor) ExtractAudio(ctx context.Context, videoPath, destDir string) (string, float64, error) {
	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	audioPath := filepath.Join(destDir, base+"_audio.wav")

	e.logger.Info(ctx, "Extracting audio: %s", videoPath)

	// -vn: drop video
	// -ar 16000 -ac 1: 16kHz mono
	// -c:a pcm_s16le: uncompressed 16-bit PCM
	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := e.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", 0, fmt.Errorf("%w: ffmpeg extract audio: %v", classifyExtractError(err), err)
	}

	duration, err := e.probeDuration(ctx, audioPath)
	if err != nil {
		return "", 0, fmt.Errorf("%w: probe duration: %v", ErrCorruptMedia, err)
	}

	e.logger.Info(ctx, "Audio extracted: %s (%.1fs)", audioPath, duration)
	return audioPath, duration, nil
}

// probeDuration asks ffprobe for the stream duration, falling back to
// parsing ffmpeg's banner output when ffprobe is unavailable.
func (e *implExtractor) probeDuration(ctx context.Context, audioPath string) (float64, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	}

	out, err := e.executor.Execute(ctx, "ffprobe", args...)
	if err == nil {
		if d, perr := strconv.ParseFloat(strings.TrimSpace(out), 64); perr == nil && d > 0 {
			return d, nil
		}
	}

	// ffmpeg prints "Duration: HH:MM:SS.cc" on stderr even when it exits
	// non-zero for a null output target.
	out, _ = e.executor.CombinedOutput(ctx, "ffmpeg", "-i", audioPath, "-f", "null", "-")
	return ParseFFmpegDuration(out)
}

func classifyExtractError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "invalid data found"),
		strings.Contains(msg, "does not contain any stream"),
		strings.Contains(msg, "could not find codec"):
		return ErrUnsupportedFormat
	default:
		return ErrCorruptMedia
	}
}
