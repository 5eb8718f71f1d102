package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/reperio/internal/interfaces"
	"github.com/ternarybob/reperio/internal/models"
)

// QueryHandler serves retrieval-augmented agent queries
type QueryHandler struct {
	agentService interfaces.AgentService
	logger       arbor.ILogger
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(agentService interfaces.AgentService, logger arbor.ILogger) *QueryHandler {
	return &QueryHandler{
		agentService: agentService,
		logger:       logger,
	}
}

// QueryHandler handles POST /query
func (h *QueryHandler) QueryHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	if h.agentService == nil {
		WriteError(w, http.StatusServiceUnavailable, models.ErrNotInitialized.Error())
		return
	}

	var req models.QueryRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.agentService.Query(r.Context(), req)
	if err != nil {
		h.logger.Error().Err(err).Str("query", req.Query).Msg("Agent query failed")
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}
