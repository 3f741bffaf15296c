package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				OpenAI: OpenAIConfig{
					APIKey: "sk-test",
				},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "missing api key",
			config: Config{
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "missing paths",
			config: Config{
				OpenAI: OpenAIConfig{
					APIKey: "sk-test",
				},
				Paths: PathsConfig{},
			},
			wantErr: true,
		},
		{
			name: "chunk length not greater than overlap",
			config: Config{
				OpenAI: OpenAIConfig{
					APIKey: "sk-test",
				},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
				Pipeline: PipelineConfig{
					ChunkLengthSeconds: 15,
					OverlapSeconds:     15,
				},
			},
			wantErr: true,
		},
		{
			name: "negative overlap",
			config: Config{
				OpenAI: OpenAIConfig{
					APIKey: "sk-test",
				},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
				Pipeline: PipelineConfig{
					ChunkLengthSeconds: 90,
					OverlapSeconds:     -1,
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		OpenAI: OpenAIConfig{APIKey: "sk-test"},
		Paths: PathsConfig{
			Input:  "data/input",
			Output: "data/output",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Pipeline.ChunkLengthSeconds != 90 {
		t.Errorf("ChunkLengthSeconds = %v, want 90", cfg.Pipeline.ChunkLengthSeconds)
	}
	if cfg.Pipeline.OverlapSeconds != 15 {
		t.Errorf("OverlapSeconds = %v, want 15", cfg.Pipeline.OverlapSeconds)
	}
	if cfg.Pipeline.ConcurrencyLimit != 3 {
		t.Errorf("ConcurrencyLimit = %v, want 3", cfg.Pipeline.ConcurrencyLimit)
	}
	if cfg.Pipeline.MaxRetries != 3 {
		t.Errorf("MaxRetries = %v, want 3", cfg.Pipeline.MaxRetries)
	}
	if cfg.Merge.MinMatchTokens != 3 {
		t.Errorf("MinMatchTokens = %v, want 3", cfg.Merge.MinMatchTokens)
	}
	if cfg.OpenAI.Model != "whisper-1" {
		t.Errorf("Model = %v, want whisper-1", cfg.OpenAI.Model)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
pipeline:
  chunk_length_seconds: 60
  overlap_seconds: 10
  concurrency_limit: 4

openai:
  api_key: "sk-test"
  model: "whisper-1"

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Pipeline.ChunkLengthSeconds != 60 {
		t.Errorf("ChunkLengthSeconds = %v, want %v", cfg.Pipeline.ChunkLengthSeconds, 60)
	}

	if cfg.Pipeline.ConcurrencyLimit != 4 {
		t.Errorf("ConcurrencyLimit = %v, want %v", cfg.Pipeline.ConcurrencyLimit, 4)
	}

	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/input")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
