package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	LLM      LLMConfig      `yaml:"llm"`
	Chunking ChunkingConfig `yaml:"chunking"`
	Runner   RunnerConfig   `yaml:"runner"`
}

// LLMConfig holds extraction-service configuration
type LLMConfig struct {
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// ChunkingConfig holds chunk sizing for both chunkers
type ChunkingConfig struct {
	ChunkSize  int `yaml:"chunk_size"`  // boundary chunker max chars
	WindowSize int `yaml:"window_size"` // sliding window chars
	Overlap    int `yaml:"overlap"`     // sliding window overlap chars
}

// RunnerConfig holds pipeline-runner configuration
type RunnerConfig struct {
	Workers   int  `yaml:"workers"`
	Limit     int  `yaml:"limit"`     // 0 = no limit
	Overwrite bool `yaml:"overwrite"` // false = resume (skip existing outputs)
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			BaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			Model:   getEnv("HARVEST_MODEL", "qwen2.5:7b"),
			Timeout: getEnvAsDuration("HARVEST_LLM_TIMEOUT", 120*time.Second),
		},
		Chunking: ChunkingConfig{
			ChunkSize:  getEnvAsInt("HARVEST_CHUNK_SIZE", 2000),
			WindowSize: getEnvAsInt("HARVEST_WINDOW_SIZE", 3000),
			Overlap:    getEnvAsInt("HARVEST_OVERLAP", 1000),
		},
		Runner: RunnerConfig{
			Workers:   getEnvAsInt("HARVEST_WORKERS", 1),
			Limit:     getEnvAsInt("HARVEST_LIMIT", 0),
			Overwrite: getEnvAsBool("HARVEST_OVERWRITE", false),
		},
	}
}

// ApplyFile overlays values from a YAML config file onto c.
// Zero values in the file leave the existing settings untouched.
func (c *Config) ApplyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return WrapError(err, "read config file")
	}
	var overlay Config
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return WrapError(err, "parse config file")
	}
	if overlay.LLM.BaseURL != "" {
		c.LLM.BaseURL = overlay.LLM.BaseURL
	}
	if overlay.LLM.Model != "" {
		c.LLM.Model = overlay.LLM.Model
	}
	if overlay.LLM.Timeout > 0 {
		c.LLM.Timeout = overlay.LLM.Timeout
	}
	if overlay.Chunking.ChunkSize > 0 {
		c.Chunking.ChunkSize = overlay.Chunking.ChunkSize
	}
	if overlay.Chunking.WindowSize > 0 {
		c.Chunking.WindowSize = overlay.Chunking.WindowSize
	}
	if overlay.Chunking.Overlap > 0 {
		c.Chunking.Overlap = overlay.Chunking.Overlap
	}
	if overlay.Runner.Workers > 0 {
		c.Runner.Workers = overlay.Runner.Workers
	}
	if overlay.Runner.Limit > 0 {
		c.Runner.Limit = overlay.Runner.Limit
	}
	if overlay.Runner.Overwrite {
		c.Runner.Overwrite = true
	}
	return nil
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.LLM.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "OLLAMA_BASE_URL is required", ErrInvalidInput)
	}
	if c.LLM.Model == "" {
		return NewAppError("CONFIG_ERROR", "HARVEST_MODEL is required", ErrInvalidInput)
	}
	if c.Chunking.ChunkSize <= 0 {
		return NewAppError("CONFIG_ERROR", "chunk size must be positive", ErrInvalidInput)
	}
	if c.Chunking.Overlap < 0 || c.Chunking.Overlap >= c.Chunking.WindowSize {
		return NewAppError("CONFIG_ERROR",
			fmt.Sprintf("overlap %d must be in [0, window size %d)", c.Chunking.Overlap, c.Chunking.WindowSize),
			ErrInvalidInput)
	}
	if c.Runner.Workers <= 0 {
		return NewAppError("CONFIG_ERROR", "workers must be positive", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
