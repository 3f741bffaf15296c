package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/fiqrioemry/file-processing-pipeline/internal/config"
	"github.com/fiqrioemry/file-processing-pipeline/internal/logger"
)

type openAIEngine struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

// NewOpenAIEngine creates an Engine backed by the OpenAI Whisper API.
// Timeouts are enforced per call via context, not on the client.
func NewOpenAIEngine(cfg config.OpenAIConfig, log logger.Logger) Engine {
	return &openAIEngine{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		client:  &http.Client{},
		logger:  log,
	}
}

type whisperSegment struct {
	AvgLogprob float64 `json:"avg_logprob"`
}

type whisperResponse struct {
	Text     string           `json:"text"`
	Segments []whisperSegment `json:"segments"`
}

func (o *openAIEngine) Transcribe(ctx context.Context, audioPath string) (string, float64, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", 0, fmt.Errorf("%w: open segment: %v", ErrInvalidAudio, err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("model", o.model); err != nil {
		return "", 0, fmt.Errorf("build request: %w", err)
	}
	// verbose_json carries per-segment log probabilities, which we fold
	// into a single confidence value.
	if err := mw.WriteField("response_format", "verbose_json"); err != nil {
		return "", 0, fmt.Errorf("build request: %w", err)
	}

	fw, err := mw.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", 0, fmt.Errorf("build request: %w", err)
	}
	if _, err := io.Copy(fw, f); err != nil {
		return "", 0, fmt.Errorf("read segment: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", 0, fmt.Errorf("build request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/audio/transcriptions", &body)
	if err != nil {
		return "", 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := o.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", 0, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return "", 0, fmt.Errorf("%w: %v", ErrServiceError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", 0, classifyHTTPStatus(resp.StatusCode, string(b))
	}

	var wr whisperResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return "", 0, fmt.Errorf("%w: decode response: %v", ErrServiceError, err)
	}

	return wr.Text, confidenceFromSegments(wr.Segments), nil
}

// classifyHTTPStatus maps Whisper API status codes onto the failure
// taxonomy the dispatcher retries on.
func classifyHTTPStatus(status int, body string) error {
	switch {
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: http %d: %s", ErrRateLimited, status, body)
	case status >= 500:
		return fmt.Errorf("%w: http %d: %s", ErrServiceError, status, body)
	case status == http.StatusBadRequest,
		status == http.StatusUnsupportedMediaType,
		status == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: http %d: %s", ErrInvalidAudio, status, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrServiceError, status, body)
	}
}

// confidenceFromSegments converts mean segment log probability into a
// value in (0, 1]. Returns 0 when the response has no segments.
func confidenceFromSegments(segments []whisperSegment) float64 {
	if len(segments) == 0 {
		return 0
	}
	var sum float64
	for _, s := range segments {
		sum += s.AvgLogprob
	}
	conf := math.Exp(sum / float64(len(segments)))
	return math.Min(conf, 1)
}
