package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/reperio/internal/common"
	"github.com/ternarybob/reperio/internal/interfaces"
)

// OllamaService implements LLMService against a local Ollama server.
// It serves both text generation (/api/generate) and embeddings
// (/api/embeddings).
type OllamaService struct {
	config  *common.OllamaConfig
	logger  arbor.ILogger
	client  *http.Client
	baseURL string
}

type ollamaGenerateRequest struct {
	Model   string                 `json:"model"`
	Prompt  string                 `json:"prompt"`
	Stream  bool                   `json:"stream"`
	Options map[string]interface{} `json:"options,omitempty"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type ollamaEmbeddingRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type ollamaEmbeddingResponse struct {
	Embedding []float32 `json:"embedding"`
}

type ollamaTagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// NewOllamaService creates an Ollama-backed LLM service
func NewOllamaService(config *common.OllamaConfig, logger arbor.ILogger) (*OllamaService, error) {
	if config.URL == "" {
		return nil, fmt.Errorf("ollama URL is required")
	}
	if config.Model == "" {
		config.Model = "mistral"
	}
	if config.EmbedModel == "" {
		config.EmbedModel = "nomic-embed-text"
	}

	timeout := 120 * time.Second
	if config.Timeout != "" {
		parsed, err := time.ParseDuration(config.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout duration '%s': %w", config.Timeout, err)
		}
		timeout = parsed
	}

	service := &OllamaService{
		config:  config,
		logger:  logger,
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(config.URL, "/"),
	}

	logger.Debug().
		Str("url", service.baseURL).
		Str("model", config.Model).
		Str("embed_model", config.EmbedModel).
		Dur("timeout", timeout).
		Msg("Ollama LLM service initialized")

	return service, nil
}

// Generate produces a completion for the given prompt
func (s *OllamaService) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	reqBody := ollamaGenerateRequest{
		Model:  s.config.Model,
		Prompt: prompt,
		Stream: false,
		Options: map[string]interface{}{
			"temperature": s.config.Temperature,
			"num_predict": s.config.MaxTokens,
		},
	}

	start := time.Now()
	var resp ollamaGenerateResponse
	if err := s.post(ctx, "/api/generate", reqBody, &resp); err != nil {
		return "", fmt.Errorf("ollama generate failed: %w", err)
	}

	s.logger.Debug().
		Int("prompt_length", len(prompt)).
		Int("response_length", len(resp.Response)).
		Dur("duration", time.Since(start)).
		Msg("Ollama generation completed")

	return strings.TrimSpace(resp.Response), nil
}

// Embed converts text into an embedding vector using the embed model
func (s *OllamaService) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	reqBody := ollamaEmbeddingRequest{
		Model:  s.config.EmbedModel,
		Prompt: text,
	}

	var resp ollamaEmbeddingResponse
	if err := s.post(ctx, "/api/embeddings", reqBody, &resp); err != nil {
		return nil, fmt.Errorf("ollama embedding failed: %w", err)
	}

	if len(resp.Embedding) == 0 {
		return nil, fmt.Errorf("ollama returned an empty embedding")
	}

	return resp.Embedding, nil
}

// HealthCheck verifies the Ollama server is reachable and has at least
// one model available.
func (s *OllamaService) HealthCheck(ctx context.Context) error {
	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(healthCtx, http.MethodGet, s.baseURL+"/api/tags", nil)
	if err != nil {
		return fmt.Errorf("failed to build health check request: %w", err)
	}

	httpResp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama server unreachable at %s: %w", s.baseURL, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama health check returned status %d", httpResp.StatusCode)
	}

	var tags ollamaTagsResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&tags); err != nil {
		return fmt.Errorf("failed to decode ollama tags response: %w", err)
	}

	if len(tags.Models) == 0 {
		return fmt.Errorf("ollama server has no models installed")
	}

	return nil
}

// GetMode reports local operation
func (s *OllamaService) GetMode() interfaces.LLMMode {
	return interfaces.LLMModeLocal
}

// ModelName returns the generation model identifier
func (s *OllamaService) ModelName() string {
	return s.config.Model
}

// EmbedModelName returns the embedding model identifier
func (s *OllamaService) EmbedModelName() string {
	return s.config.EmbedModel
}

// Close releases resources. The HTTP client needs no cleanup.
func (s *OllamaService) Close() error {
	return nil
}

// post sends a JSON request and decodes the JSON response
func (s *OllamaService) post(ctx context.Context, path string, reqBody, respBody interface{}) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(httpResp.Body, 4096))
		return fmt.Errorf("%s returned status %d: %s", path, httpResp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(httpResp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}
