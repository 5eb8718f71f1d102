package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Service info (also serves as JSON 404 for unknown paths)
	mux.HandleFunc("/", s.app.StatusHandler.InfoHandler)

	// Health and system status
	mux.HandleFunc("/health", s.app.StatusHandler.HealthHandler)
	mux.HandleFunc("/stats", s.app.StatusHandler.StatsHandler)
	mux.HandleFunc("/version", s.app.StatusHandler.VersionHandler)

	// Agent query (retrieval + generation)
	mux.HandleFunc("/query", s.app.QueryHandler.QueryHandler)

	// Document retrieval and management
	mux.HandleFunc("/search", s.app.SearchHandler.SearchHandler)
	mux.HandleFunc("/documents", s.app.DocumentHandler.DocumentsHandler)

	return mux
}
