package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ternarybob/reperio/internal/common"
	"github.com/ternarybob/reperio/internal/models"
)

func TestSearch(t *testing.T) {
	service := &mockDocumentService{
		searchFunc: func(ctx context.Context, query string, nResults int) ([]models.SearchResult, error) {
			if query != "what is rag" {
				t.Errorf("unexpected query: %q", query)
			}
			return []models.SearchResult{
				{ID: "doc_1", Content: "RAG grounds answers in retrieved text.", Metadata: map[string]string{"source": "sample"}, Distance: 0.12},
				{ID: "doc_2", Content: "Vector search ranks by distance.", Metadata: map[string]string{"source": "sample"}, Distance: 0.33},
			}, nil
		},
	}
	handler := NewSearchHandler(service, 3, common.GetLogger())

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"query":"what is rag","n_results":2}`))
	rec := httptest.NewRecorder()

	handler.SearchHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.SearchResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count != 2 || len(resp.Results) != 2 {
		t.Errorf("expected 2 results, got count=%d len=%d", resp.Count, len(resp.Results))
	}
	if resp.Results[0].ID != "doc_1" {
		t.Errorf("unexpected first result: %+v", resp.Results[0])
	}
}

func TestSearchDefaultNResults(t *testing.T) {
	var gotN int
	service := &mockDocumentService{
		searchFunc: func(ctx context.Context, query string, nResults int) ([]models.SearchResult, error) {
			gotN = nResults
			return []models.SearchResult{}, nil
		},
	}
	handler := NewSearchHandler(service, 3, common.GetLogger())

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"query":"hello"}`))
	rec := httptest.NewRecorder()

	handler.SearchHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotN != 3 {
		t.Errorf("expected default n_results 3, got %d", gotN)
	}
}

func TestSearchMissingQuery(t *testing.T) {
	handler := NewSearchHandler(&mockDocumentService{}, 3, common.GetLogger())

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"n_results":2}`))
	rec := httptest.NewRecorder()

	handler.SearchHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing query, got %d", rec.Code)
	}
}

func TestSearchErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid argument", fmt.Errorf("%w: bad", models.ErrInvalidArgument), http.StatusBadRequest},
		{"embedding failure", fmt.Errorf("%w: down", models.ErrEmbedding), http.StatusInternalServerError},
		{"index failure", fmt.Errorf("%w: broken", models.ErrIndexQuery), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockDocumentService{
				searchFunc: func(ctx context.Context, query string, nResults int) ([]models.SearchResult, error) {
					return nil, tt.err
				},
			}
			handler := NewSearchHandler(service, 3, common.GetLogger())

			req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"query":"q"}`))
			rec := httptest.NewRecorder()

			handler.SearchHandler(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestSearchMethodNotAllowed(t *testing.T) {
	handler := NewSearchHandler(&mockDocumentService{}, 3, common.GetLogger())

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	rec := httptest.NewRecorder()

	handler.SearchHandler(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}
