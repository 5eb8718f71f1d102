package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/reperio/internal/interfaces"
	"github.com/ternarybob/reperio/internal/models"
)

// DocumentHandler serves document add and collection delete operations
type DocumentHandler struct {
	documentService interfaces.DocumentService
	logger          arbor.ILogger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService interfaces.DocumentService, logger arbor.ILogger) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		logger:          logger,
	}
}

// DocumentsHandler routes /documents by method: POST adds documents,
// DELETE clears the collection.
func (h *DocumentHandler) DocumentsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.addDocuments(w, r)
	case http.MethodDelete:
		h.deleteCollection(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *DocumentHandler) addDocuments(w http.ResponseWriter, r *http.Request) {
	if h.documentService == nil {
		WriteError(w, http.StatusServiceUnavailable, models.ErrNotInitialized.Error())
		return
	}

	var req models.AddDocumentsRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}

	ids, err := h.documentService.AddDocuments(r.Context(), req.Documents, req.IDs, req.Metadata)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to add documents")
		WriteServiceError(w, err)
		return
	}

	stats, err := h.documentService.Stats(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read stats after add")
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, models.AddDocumentsResponse{
		Status:         "success",
		DocumentsAdded: len(ids),
		TotalDocuments: stats.DocumentCount,
		IDs:            ids,
	})
}

func (h *DocumentHandler) deleteCollection(w http.ResponseWriter, r *http.Request) {
	if h.documentService == nil {
		WriteError(w, http.StatusServiceUnavailable, models.ErrNotInitialized.Error())
		return
	}

	if err := h.documentService.DeleteCollection(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("Failed to delete collection")
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, "Collection deleted")
}
