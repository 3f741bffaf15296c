package config

import "fmt"

type Config struct {
	Pipeline    PipelineConfig    `yaml:"pipeline"`
	Merge       MergeConfig       `yaml:"merge"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type PipelineConfig struct {
	ChunkLengthSeconds    float64 `yaml:"chunk_length_seconds"`
	OverlapSeconds        float64 `yaml:"overlap_seconds"`
	MinWindowSeconds      float64 `yaml:"min_window_seconds"`
	ConcurrencyLimit      int     `yaml:"concurrency_limit"`
	MaxRetries            int     `yaml:"max_retries"`
	PerCallTimeoutSeconds float64 `yaml:"per_call_timeout_seconds"`
	RunTimeoutSeconds     float64 `yaml:"run_timeout_seconds"`
}

type MergeConfig struct {
	MinMatchTokens int     `yaml:"min_match_tokens"`
	WordsPerSecond float64 `yaml:"words_per_second"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrentRuns int `yaml:"max_concurrent_runs"`
}

func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai.api_key is required")
	}
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Pipeline.ChunkLengthSeconds == 0 {
		c.Pipeline.ChunkLengthSeconds = 90
	}
	if c.Pipeline.OverlapSeconds == 0 {
		c.Pipeline.OverlapSeconds = 15
	}
	if c.Pipeline.OverlapSeconds < 0 {
		return fmt.Errorf("pipeline.overlap_seconds must not be negative")
	}
	if c.Pipeline.ChunkLengthSeconds <= c.Pipeline.OverlapSeconds {
		return fmt.Errorf("pipeline.chunk_length_seconds (%.1f) must be greater than pipeline.overlap_seconds (%.1f)",
			c.Pipeline.ChunkLengthSeconds, c.Pipeline.OverlapSeconds)
	}
	if c.Pipeline.MinWindowSeconds == 0 {
		c.Pipeline.MinWindowSeconds = 1
	}
	if c.Pipeline.ConcurrencyLimit == 0 {
		c.Pipeline.ConcurrencyLimit = 3
	}
	if c.Pipeline.MaxRetries == 0 {
		c.Pipeline.MaxRetries = 3
	}
	if c.Pipeline.PerCallTimeoutSeconds == 0 {
		c.Pipeline.PerCallTimeoutSeconds = 120
	}
	if c.Pipeline.RunTimeoutSeconds == 0 {
		c.Pipeline.RunTimeoutSeconds = 3600
	}

	if c.Merge.MinMatchTokens == 0 {
		c.Merge.MinMatchTokens = 3
	}
	if c.Merge.WordsPerSecond == 0 {
		c.Merge.WordsPerSecond = 3
	}

	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "whisper-1"
	}
	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrentRuns == 0 {
		c.Performance.MaxConcurrentRuns = 2
	}

	return nil
}
