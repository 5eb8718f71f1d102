package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/reperio/internal/common"
	"github.com/ternarybob/reperio/internal/interfaces"
)

// StatusHandler serves service info, health, stats, and version
type StatusHandler struct {
	documentService interfaces.DocumentService
	llmService      interfaces.LLMService
	llmConfig       *common.LLMConfig
	logger          arbor.ILogger
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(documentService interfaces.DocumentService, llmService interfaces.LLMService, llmConfig *common.LLMConfig, logger arbor.ILogger) *StatusHandler {
	return &StatusHandler{
		documentService: documentService,
		llmService:      llmService,
		llmConfig:       llmConfig,
		logger:          logger,
	}
}

// InfoHandler handles GET / with service and endpoint information
func (h *StatusHandler) InfoHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.NotFoundHandler(w, r)
		return
	}
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"name":        "Reperio",
		"description": "Retrieval-augmented generation document store and agent",
		"version":     common.GetVersion(),
		"endpoints": map[string]string{
			"GET /":             "API info",
			"GET /health":       "Health check",
			"POST /query":       "Query agent",
			"POST /search":      "Search documents",
			"POST /documents":   "Add documents",
			"DELETE /documents": "Delete collection",
			"GET /stats":        "System stats",
			"GET /version":      "Version info",
		},
	})
}

// HealthHandler handles GET /health. Returns 503 while the store is
// unavailable. Local LLM reachability is probed too; cloud providers
// are skipped to avoid billable health probes.
func (h *StatusHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	if h.documentService == nil {
		WriteJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "initializing",
		})
		return
	}

	stats, err := h.documentService.Stats(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Health check failed to read stats")
		WriteJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	if h.llmService != nil && h.llmService.GetMode() == interfaces.LLMModeLocal {
		if err := h.llmService.HealthCheck(r.Context()); err != nil {
			WriteJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
				"status":                 "unhealthy",
				"error":                  err.Error(),
				"vector_store_documents": stats.DocumentCount,
			})
			return
		}
	}

	response := map[string]interface{}{
		"status":                 "healthy",
		"vector_store_documents": stats.DocumentCount,
	}
	if h.llmService != nil {
		response["llm_mode"] = string(h.llmService.GetMode())
	}
	WriteJSON(w, http.StatusOK, response)
}

// StatsHandler handles GET /stats
func (h *StatusHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	if h.documentService == nil {
		WriteError(w, http.StatusServiceUnavailable, "document store not initialized")
		return
	}

	stats, err := h.documentService.Stats(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read stats")
		WriteServiceError(w, err)
		return
	}

	response := map[string]interface{}{
		"vector_store": stats,
	}
	if h.llmConfig != nil {
		agentConfig := map[string]interface{}{
			"provider": string(h.llmConfig.Provider),
		}
		switch h.llmConfig.Provider {
		case common.LLMProviderClaude:
			agentConfig["model"] = h.llmConfig.Claude.Model
			agentConfig["max_tokens"] = h.llmConfig.Claude.MaxTokens
			agentConfig["temperature"] = h.llmConfig.Claude.Temperature
		default:
			agentConfig["model"] = h.llmConfig.Ollama.Model
			agentConfig["ollama_url"] = h.llmConfig.Ollama.URL
			agentConfig["max_tokens"] = h.llmConfig.Ollama.MaxTokens
			agentConfig["temperature"] = h.llmConfig.Ollama.Temperature
		}
		response["agent_config"] = agentConfig
	}

	WriteJSON(w, http.StatusOK, response)
}

// VersionHandler handles GET /version
func (h *StatusHandler) VersionHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.Version,
		"build":   common.Build,
		"commit":  common.GitCommit,
	})
}

// NotFoundHandler writes a JSON 404
func (h *StatusHandler) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, "Not found: "+r.URL.Path)
}
