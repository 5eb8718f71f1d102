package llm

import (
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/reperio/internal/common"
	"github.com/ternarybob/reperio/internal/interfaces"
)

// NewServices builds the chat LLM service for the configured provider
// and the embedding-capable service. Embeddings always run on the local
// Ollama embed model; with the ollama provider both returned services
// are the same instance.
func NewServices(config *common.LLMConfig, logger arbor.ILogger) (chat interfaces.LLMService, embedder interfaces.LLMService, err error) {
	if err := validateOllamaConfig(&config.Ollama); err != nil {
		return nil, nil, err
	}

	ollamaService, err := NewOllamaService(&config.Ollama, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create ollama service: %w", err)
	}

	switch config.Provider {
	case common.LLMProviderOllama, "":
		return ollamaService, ollamaService, nil

	case common.LLMProviderClaude:
		if err := validateClaudeConfig(&config.Claude); err != nil {
			return nil, nil, err
		}
		claudeService, err := NewClaudeService(&config.Claude, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create claude service: %w", err)
		}
		return claudeService, ollamaService, nil

	default:
		return nil, nil, fmt.Errorf("unsupported llm provider '%s' (valid: ollama, claude)", config.Provider)
	}
}

func validateOllamaConfig(config *common.OllamaConfig) error {
	if config.URL == "" {
		return fmt.Errorf("llm.ollama.url is required")
	}
	if config.EmbedModel == "" {
		return fmt.Errorf("llm.ollama.embed_model is required")
	}
	return nil
}

func validateClaudeConfig(config *common.ClaudeConfig) error {
	if config.APIKey == "" {
		return fmt.Errorf("llm.claude.api_key is required for the claude provider")
	}
	return nil
}
