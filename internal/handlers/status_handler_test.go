package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ternarybob/reperio/internal/common"
	"github.com/ternarybob/reperio/internal/interfaces"
	"github.com/ternarybob/reperio/internal/models"
)

func TestHealthHealthy(t *testing.T) {
	service := &mockDocumentService{
		statsFunc: func(ctx context.Context) (models.CollectionStats, error) {
			return models.CollectionStats{DocumentCount: 5}, nil
		},
	}
	llm := &mockLLMService{}
	handler := NewStatusHandler(service, llm, nil, common.GetLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.HealthHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "healthy" {
		t.Errorf("expected healthy status, got %v", resp["status"])
	}
	if resp["vector_store_documents"] != float64(5) {
		t.Errorf("expected 5 documents, got %v", resp["vector_store_documents"])
	}
	if llm.healthHits != 1 {
		t.Errorf("expected one llm health probe, got %d", llm.healthHits)
	}
}

func TestHealthNotInitialized(t *testing.T) {
	handler := NewStatusHandler(nil, nil, nil, common.GetLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.HealthHandler(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "initializing" {
		t.Errorf("expected initializing status, got %v", resp["status"])
	}
}

func TestHealthLLMUnreachable(t *testing.T) {
	service := &mockDocumentService{}
	llm := &mockLLMService{
		healthFunc: func(ctx context.Context) error {
			return errors.New("ollama server unreachable")
		},
	}
	handler := NewStatusHandler(service, llm, nil, common.GetLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.HealthHandler(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}

func TestHealthSkipsCloudProbe(t *testing.T) {
	service := &mockDocumentService{}
	llm := &mockLLMService{mode: interfaces.LLMModeCloud}
	handler := NewStatusHandler(service, llm, nil, common.GetLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.HealthHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if llm.healthHits != 0 {
		t.Error("cloud providers must not be probed on health checks")
	}
}

func TestStats(t *testing.T) {
	service := &mockDocumentService{
		statsFunc: func(ctx context.Context) (models.CollectionStats, error) {
			return models.CollectionStats{
				CollectionName: "documents",
				DocumentCount:  7,
				PersistDir:     "./data/vectors",
			}, nil
		},
	}
	llmConfig := &common.NewDefaultConfig().LLM
	handler := NewStatusHandler(service, &mockLLMService{}, llmConfig, common.GetLogger())

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()

	handler.StatsHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		VectorStore models.CollectionStats `json:"vector_store"`
		AgentConfig map[string]interface{} `json:"agent_config"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.VectorStore.DocumentCount != 7 {
		t.Errorf("expected count 7, got %d", resp.VectorStore.DocumentCount)
	}
	if resp.AgentConfig["model"] != "mistral" {
		t.Errorf("expected agent model mistral, got %v", resp.AgentConfig["model"])
	}
	if resp.AgentConfig["provider"] != "ollama" {
		t.Errorf("expected provider ollama, got %v", resp.AgentConfig["provider"])
	}
}

func TestVersion(t *testing.T) {
	handler := NewStatusHandler(&mockDocumentService{}, nil, nil, common.GetLogger())

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()

	handler.VersionHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["version"] == "" {
		t.Error("expected version field")
	}
}

func TestInfo(t *testing.T) {
	handler := NewStatusHandler(&mockDocumentService{}, nil, nil, common.GetLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.InfoHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["name"] != "Reperio" {
		t.Errorf("unexpected service name: %v", resp["name"])
	}
}

func TestInfoUnknownPath(t *testing.T) {
	handler := NewStatusHandler(&mockDocumentService{}, nil, nil, common.GetLogger())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()

	handler.InfoHandler(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
