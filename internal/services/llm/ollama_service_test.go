package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ternarybob/reperio/internal/common"
	"github.com/ternarybob/reperio/internal/interfaces"
)

func newOllamaServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *OllamaService) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	service, err := NewOllamaService(&common.OllamaConfig{
		URL:         server.URL,
		Model:       "mistral",
		EmbedModel:  "nomic-embed-text",
		Timeout:     "5s",
		MaxTokens:   256,
		Temperature: 0.7,
	}, common.GetLogger())
	if err != nil {
		t.Fatalf("NewOllamaService failed: %v", err)
	}

	return server, service
}

func TestOllamaGenerate(t *testing.T) {
	_, service := newOllamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}

		var req ollamaGenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Model != "mistral" {
			t.Errorf("expected model mistral, got %q", req.Model)
		}
		if req.Stream {
			t.Error("expected stream=false")
		}
		if req.Prompt != "What is RAG?" {
			t.Errorf("unexpected prompt: %q", req.Prompt)
		}

		json.NewEncoder(w).Encode(ollamaGenerateResponse{Response: "  RAG combines retrieval and generation.\n", Done: true})
	})

	response, err := service.Generate(context.Background(), "What is RAG?")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if response != "RAG combines retrieval and generation." {
		t.Errorf("unexpected response: %q", response)
	}
}

func TestOllamaGenerateEmptyPrompt(t *testing.T) {
	_, service := newOllamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("server should not be called for empty prompt")
	})

	if _, err := service.Generate(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty prompt")
	}
}

func TestOllamaGenerateServerError(t *testing.T) {
	_, service := newOllamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	})

	_, err := service.Generate(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error for server failure")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("expected status code in error, got: %v", err)
	}
}

func TestOllamaEmbed(t *testing.T) {
	_, service := newOllamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/embeddings" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		var req ollamaEmbeddingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Model != "nomic-embed-text" {
			t.Errorf("expected embed model, got %q", req.Model)
		}

		json.NewEncoder(w).Encode(ollamaEmbeddingResponse{Embedding: []float32{0.1, 0.2, 0.3}})
	})

	embedding, err := service.Embed(context.Background(), "some text")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	if len(embedding) != 3 {
		t.Errorf("expected 3-dim embedding, got %d", len(embedding))
	}
}

func TestOllamaEmbedEmptyVector(t *testing.T) {
	_, service := newOllamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaEmbeddingResponse{})
	})

	if _, err := service.Embed(context.Background(), "text"); err == nil {
		t.Fatal("expected error for empty embedding")
	}
}

func TestOllamaHealthCheck(t *testing.T) {
	_, service := newOllamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"models":[{"name":"mistral:latest"},{"name":"nomic-embed-text:latest"}]}`))
	})

	if err := service.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck failed: %v", err)
	}
}

func TestOllamaHealthCheckNoModels(t *testing.T) {
	_, service := newOllamaServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"models":[]}`))
	})

	if err := service.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected error when no models are installed")
	}
}

func TestOllamaHealthCheckUnreachable(t *testing.T) {
	server, service := newOllamaServer(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	if err := service.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected error for unreachable server")
	}
}

func TestOllamaMode(t *testing.T) {
	_, service := newOllamaServer(t, func(w http.ResponseWriter, r *http.Request) {})

	if service.GetMode() != interfaces.LLMModeLocal {
		t.Errorf("expected local mode, got %q", service.GetMode())
	}
	if service.ModelName() != "mistral" {
		t.Errorf("unexpected model name: %q", service.ModelName())
	}
}
