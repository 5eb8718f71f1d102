package handlers

import (
	"context"

	"github.com/ternarybob/reperio/internal/interfaces"
	"github.com/ternarybob/reperio/internal/models"
)

// mockDocumentService implements interfaces.DocumentService with func fields
type mockDocumentService struct {
	addFunc    func(ctx context.Context, documents []string, ids []string, metadata []map[string]string) ([]string, error)
	searchFunc func(ctx context.Context, query string, nResults int) ([]models.SearchResult, error)
	deleteFunc func(ctx context.Context) error
	statsFunc  func(ctx context.Context) (models.CollectionStats, error)
}

func (m *mockDocumentService) AddDocuments(ctx context.Context, documents []string, ids []string, metadata []map[string]string) ([]string, error) {
	if m.addFunc != nil {
		return m.addFunc(ctx, documents, ids, metadata)
	}
	return ids, nil
}

func (m *mockDocumentService) Search(ctx context.Context, query string, nResults int) ([]models.SearchResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, nResults)
	}
	return []models.SearchResult{}, nil
}

func (m *mockDocumentService) SearchFormatted(ctx context.Context, query string, nResults int) (string, error) {
	return "", nil
}

func (m *mockDocumentService) DeleteCollection(ctx context.Context) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx)
	}
	return nil
}

func (m *mockDocumentService) Stats(ctx context.Context) (models.CollectionStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return models.CollectionStats{CollectionName: "documents", PersistDir: "./data/vectors"}, nil
}

// mockAgentService implements interfaces.AgentService with func fields
type mockAgentService struct {
	queryFunc  func(ctx context.Context, req models.QueryRequest) (models.QueryResponse, error)
	healthFunc func(ctx context.Context) error
}

func (m *mockAgentService) Query(ctx context.Context, req models.QueryRequest) (models.QueryResponse, error) {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, req)
	}
	return models.QueryResponse{}, nil
}

func (m *mockAgentService) HealthCheck(ctx context.Context) error {
	if m.healthFunc != nil {
		return m.healthFunc(ctx)
	}
	return nil
}

func (m *mockAgentService) ModelName() string { return "mistral" }

// mockLLMService implements interfaces.LLMService with func fields
type mockLLMService struct {
	mode       interfaces.LLMMode
	healthFunc func(ctx context.Context) error
	healthHits int
}

func (m *mockLLMService) Generate(ctx context.Context, prompt string) (string, error) {
	return "", nil
}

func (m *mockLLMService) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, nil
}

func (m *mockLLMService) HealthCheck(ctx context.Context) error {
	m.healthHits++
	if m.healthFunc != nil {
		return m.healthFunc(ctx)
	}
	return nil
}

func (m *mockLLMService) GetMode() interfaces.LLMMode {
	if m.mode == "" {
		return interfaces.LLMModeLocal
	}
	return m.mode
}

func (m *mockLLMService) ModelName() string { return "mistral" }
func (m *mockLLMService) Close() error      { return nil }
