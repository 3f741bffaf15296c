package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fiqrioemry/file-processing-pipeline/internal/models"
	"github.com/fiqrioemry/file-processing-pipeline/internal/summarizer"
)

// ProcessAndStore runs the pipeline and persists the outputs: transcript
// and summary as docx, plus the full structured result as JSON. The
// source video is moved to the archived folder on success.
func (p *implProcessor) ProcessAndStore(ctx context.Context, videoPath string) error {
	name := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))

	result := p.ProcessFile(ctx, videoPath)
	if !result.Success {
		return fmt.Errorf("process %s: %s", name, result.ErrorDetails)
	}

	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	transcriptPath := filepath.Join(p.cfg.Paths.Output, name+"_transcript.docx")
	transcript := models.Transcript{Text: result.Transcript, Chunks: result.Chunks}
	if err := summarizer.WriteTranscriptDocx(name, transcript, transcriptPath); err != nil {
		return fmt.Errorf("write transcript docx: %w", err)
	}
	p.logger.Info(ctx, "Transcript written: %s", transcriptPath)

	if result.Summary != "" {
		summaryPath := filepath.Join(p.cfg.Paths.Output, name+"_summary.docx")
		if err := summarizer.WriteSummaryDocx(name, result.Summary, summaryPath); err != nil {
			p.logger.Warn(ctx, "Failed to write summary docx: %v", err)
		} else {
			p.logger.Info(ctx, "Summary written: %s", summaryPath)
		}
	}

	resultPath := filepath.Join(p.cfg.Paths.Output, name+"_result.json")
	if err := p.writeResultJSON(result, resultPath); err != nil {
		p.logger.Warn(ctx, "Failed to write result json: %v", err)
	}

	p.archiveVideo(ctx, videoPath)
	return nil
}

func (p *implProcessor) writeResultJSON(result *models.Result, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// archiveVideo moves the processed video out of the input folder so it
// is not picked up again. Best-effort.
func (p *implProcessor) archiveVideo(ctx context.Context, videoPath string) {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		p.logger.Warn(ctx, "Failed to create archived dir: %v", err)
		return
	}

	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(videoPath))
	if err := os.Rename(videoPath, dest); err != nil {
		p.logger.Warn(ctx, "Failed to archive %s: %v", videoPath, err)
	} else {
		p.logger.Info(ctx, "Archived video: %s", dest)
	}
}
