package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// LLMProvider selects which backend answers agent queries.
type LLMProvider string

const (
	// LLMProviderOllama uses a local Ollama server.
	LLMProviderOllama LLMProvider = "ollama"
	// LLMProviderClaude uses the Anthropic Claude API.
	LLMProviderClaude LLMProvider = "claude"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logging   LoggingConfig   `toml:"logging"`
	Storage   StorageConfig   `toml:"storage"`
	LLM       LLMConfig       `toml:"llm"`
	Retrieval RetrievalConfig `toml:"retrieval"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

type StorageConfig struct {
	Badger     BadgerConfig `toml:"badger"`
	Collection string       `toml:"collection"` // Collection name documents are scoped to
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`             // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean test runs
}

// LLMConfig contains unified configuration for all LLM providers
type LLMConfig struct {
	Provider LLMProvider  `toml:"provider"` // "ollama" or "claude" (default: "ollama")
	Ollama   OllamaConfig `toml:"ollama"`
	Claude   ClaudeConfig `toml:"claude"`
}

// OllamaConfig contains local Ollama server configuration.
// Embeddings always come from the Ollama embed model, regardless of
// which provider handles chat, so the vector space stays consistent.
type OllamaConfig struct {
	URL         string  `toml:"url"`         // Ollama server URL (default: "http://localhost:11434")
	Model       string  `toml:"model"`       // Generation model (default: "mistral")
	EmbedModel  string  `toml:"embed_model"` // Embedding model (default: "nomic-embed-text")
	Timeout     string  `toml:"timeout"`     // Request timeout as duration string (default: "120s")
	MaxTokens   int     `toml:"max_tokens"`  // Maximum tokens in response (default: 1024)
	Temperature float32 `toml:"temperature"` // Sampling temperature (default: 0.7)
}

// ClaudeConfig contains Anthropic Claude API configuration
type ClaudeConfig struct {
	APIKey      string  `toml:"api_key"`     // Anthropic API key
	Model       string  `toml:"model"`       // Model name (default: "claude-sonnet-4-20250514")
	MaxTokens   int     `toml:"max_tokens"`  // Maximum tokens in response (default: 1024)
	Timeout     string  `toml:"timeout"`     // Operation timeout as duration string (default: "60s")
	RateLimit   string  `toml:"rate_limit"`  // Minimum interval between API requests (default: "1s")
	Temperature float32 `toml:"temperature"` // Completion temperature (default: 0.7)
}

// RetrievalConfig contains retrieval behavior settings
type RetrievalConfig struct {
	DefaultResults int  `toml:"default_results"` // Results returned when a request omits n_results (default: 3)
	LoadSamples    bool `toml:"load_samples"`    // Seed sample documents into an empty collection at startup
}

// NewDefaultConfig creates a configuration with default values.
// Only user-facing settings are exposed in reperio.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8000,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout", "file"},
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data/vectors",
			},
			Collection: "documents",
		},
		LLM: LLMConfig{
			Provider: LLMProviderOllama,
			Ollama: OllamaConfig{
				URL:         "http://localhost:11434",
				Model:       "mistral",
				EmbedModel:  "nomic-embed-text",
				Timeout:     "120s",
				MaxTokens:   1024,
				Temperature: 0.7,
			},
			Claude: ClaudeConfig{
				Model:       "claude-sonnet-4-20250514",
				MaxTokens:   1024,
				Timeout:     "60s",
				RateLimit:   "1s",
				Temperature: 0.7,
			},
		},
		Retrieval: RetrievalConfig{
			DefaultResults: 3,
			LoadSamples:    true,
		},
	}
}

// LoadFromFiles loads configuration by layering TOML files over the
// defaults, then applying environment overrides. Missing files are
// skipped silently so auto-discovered paths can be passed unchecked.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies REPERIO_* environment variable overrides
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("REPERIO_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Server.Port = port
		}
	}
	if v := os.Getenv("REPERIO_HOST"); v != "" {
		config.Server.Host = v
	}
	if v := os.Getenv("REPERIO_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("REPERIO_STORAGE_PATH"); v != "" {
		config.Storage.Badger.Path = v
	}
	if v := os.Getenv("REPERIO_COLLECTION"); v != "" {
		config.Storage.Collection = v
	}
	if v := os.Getenv("REPERIO_LLM_PROVIDER"); v != "" {
		config.LLM.Provider = LLMProvider(strings.ToLower(v))
	}
	if v := os.Getenv("REPERIO_OLLAMA_URL"); v != "" {
		config.LLM.Ollama.URL = v
	}
	if v := os.Getenv("REPERIO_OLLAMA_MODEL"); v != "" {
		config.LLM.Ollama.Model = v
	}
	if v := os.Getenv("REPERIO_OLLAMA_EMBED_MODEL"); v != "" {
		config.LLM.Ollama.EmbedModel = v
	}
	if v := os.Getenv("REPERIO_CLAUDE_API_KEY"); v != "" {
		config.LLM.Claude.APIKey = v
	} else if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" && config.LLM.Claude.APIKey == "" {
		config.LLM.Claude.APIKey = v
	}
	if v := os.Getenv("REPERIO_LOAD_SAMPLES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Retrieval.LoadSamples = b
		}
	}
}

// ApplyFlagOverrides applies command-line flag overrides to the config.
// Zero values mean the flag was not provided.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}
