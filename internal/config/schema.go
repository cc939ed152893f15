// Package config defines and loads the docpilot configuration.
//
// Configuration lives in ~/.docpilot/config.yaml. Every field has a default
// that works against a local OpenAI-compatible endpoint (LM Studio et al.),
// and the usual LOCAL_LLM_* environment variables override the file.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// ModelConfig holds the completion-endpoint settings.
type ModelConfig struct {
	// Name is the model identifier sent with every request.
	Name string `yaml:"name"`
	// APIBase is the OpenAI-compatible base URL, e.g. http://localhost:1234/v1.
	APIBase string `yaml:"apiBase"`
	// APIKey authenticates requests; local endpoints ignore it.
	APIKey string `yaml:"apiKey"`
	// TimeoutSeconds caps each individual completion request. There is no
	// overall turn timeout.
	TimeoutSeconds int `yaml:"timeoutSeconds"`
}

// Timeout returns the per-request ceiling as a duration.
func (m ModelConfig) Timeout() time.Duration {
	return time.Duration(m.TimeoutSeconds) * time.Second
}

// ServerConfig describes the stdio tool-provider subprocess.
type ServerConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
	// TimeoutSeconds bounds individual MCP requests.
	TimeoutSeconds int `yaml:"timeoutSeconds"`
}

func (s ServerConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Config is the root configuration object.
type Config struct {
	Model  ModelConfig  `yaml:"model"`
	Server ServerConfig `yaml:"server"`
}

// DefaultConfig returns the built-in configuration, with LOCAL_LLM_MODEL,
// LOCAL_LLM_BASE_URL and LOCAL_LLM_API_KEY applied when set.
func DefaultConfig() Config {
	cfg := Config{
		Model: ModelConfig{
			Name:           "mistralai/minstral-3-14b-reasoning",
			APIBase:        "http://localhost:1234/v1",
			APIKey:         "not-needed",
			TimeoutSeconds: 300,
		},
		Server: ServerConfig{
			Command:        os.Args[0],
			Args:           []string{"serve"},
			TimeoutSeconds: 60,
		},
	}
	if v := os.Getenv("LOCAL_LLM_MODEL"); v != "" {
		cfg.Model.Name = v
	}
	if v := os.Getenv("LOCAL_LLM_BASE_URL"); v != "" {
		cfg.Model.APIBase = v
	}
	if v := os.Getenv("LOCAL_LLM_API_KEY"); v != "" {
		cfg.Model.APIKey = v
	}
	return cfg
}

// ConfigPath returns the default configuration file path: ~/.docpilot/config.yaml.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".docpilot/config.yaml"
	}
	return filepath.Join(home, ".docpilot", "config.yaml")
}
