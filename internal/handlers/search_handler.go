package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/reperio/internal/interfaces"
	"github.com/ternarybob/reperio/internal/models"
)

// SearchHandler serves similarity search requests
type SearchHandler struct {
	documentService interfaces.DocumentService
	defaultResults  int
	logger          arbor.ILogger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(documentService interfaces.DocumentService, defaultResults int, logger arbor.ILogger) *SearchHandler {
	if defaultResults <= 0 {
		defaultResults = 3
	}
	return &SearchHandler{
		documentService: documentService,
		defaultResults:  defaultResults,
		logger:          logger,
	}
}

// SearchHandler handles POST /search
func (h *SearchHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	if h.documentService == nil {
		WriteError(w, http.StatusServiceUnavailable, models.ErrNotInitialized.Error())
		return
	}

	var req models.SearchRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}
	if req.NResults <= 0 {
		req.NResults = h.defaultResults
	}

	results, err := h.documentService.Search(r.Context(), req.Query, req.NResults)
	if err != nil {
		h.logger.Error().Err(err).Str("query", req.Query).Msg("Search failed")
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, models.SearchResponse{
		Query:   req.Query,
		Results: results,
		Count:   len(results),
	})
}
