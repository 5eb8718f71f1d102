package llm

import (
	"testing"

	"github.com/ternarybob/reperio/internal/common"
)

func TestNewServicesOllama(t *testing.T) {
	config := common.NewDefaultConfig().LLM

	chat, embedder, err := NewServices(&config, common.GetLogger())
	if err != nil {
		t.Fatalf("NewServices failed: %v", err)
	}
	if chat != embedder {
		t.Error("ollama provider should serve chat and embeddings from one instance")
	}
}

func TestNewServicesClaude(t *testing.T) {
	config := common.NewDefaultConfig().LLM
	config.Provider = common.LLMProviderClaude
	config.Claude.APIKey = "test-key"

	chat, embedder, err := NewServices(&config, common.GetLogger())
	if err != nil {
		t.Fatalf("NewServices failed: %v", err)
	}
	if chat == embedder {
		t.Error("claude provider should keep embeddings on a separate ollama service")
	}
	if _, err := chat.Embed(t.Context(), "text"); err == nil {
		t.Error("claude service should reject embedding requests")
	}
}

func TestNewServicesClaudeMissingKey(t *testing.T) {
	config := common.NewDefaultConfig().LLM
	config.Provider = common.LLMProviderClaude

	if _, _, err := NewServices(&config, common.GetLogger()); err == nil {
		t.Fatal("expected error for missing claude api key")
	}
}

func TestNewServicesUnknownProvider(t *testing.T) {
	config := common.NewDefaultConfig().LLM
	config.Provider = "openai"

	if _, _, err := NewServices(&config, common.GetLogger()); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}
