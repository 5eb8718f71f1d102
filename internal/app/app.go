package app

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/reperio/internal/common"
	"github.com/ternarybob/reperio/internal/handlers"
	"github.com/ternarybob/reperio/internal/interfaces"
	"github.com/ternarybob/reperio/internal/services/agent"
	"github.com/ternarybob/reperio/internal/services/documents"
	"github.com/ternarybob/reperio/internal/services/embeddings"
	"github.com/ternarybob/reperio/internal/services/llm"
	"github.com/ternarybob/reperio/internal/storage/badger"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	StorageManager interfaces.StorageManager

	// LLM services. Chat answers agent queries; the embedder always runs
	// against Ollama so the vector space does not depend on the provider.
	LLMService       interfaces.LLMService
	EmbeddingService interfaces.EmbeddingService

	DocumentService interfaces.DocumentService
	AgentService    interfaces.AgentService

	// HTTP handlers
	DocumentHandler *handlers.DocumentHandler
	SearchHandler   *handlers.SearchHandler
	QueryHandler    *handlers.QueryHandler
	StatusHandler   *handlers.StatusHandler
}

// New initializes the application with all dependencies
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	if err := app.initStorage(); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	if err := app.initServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	app.initHandlers()

	if err := app.loadSamples(); err != nil {
		// Sample documents are a convenience, not a requirement
		app.Logger.Warn().Err(err).Msg("Failed to load sample documents")
	}

	app.Logger.Info().
		Str("collection", cfg.Storage.Collection).
		Str("provider", string(cfg.LLM.Provider)).
		Msg("Application initialization complete")

	return app, nil
}

// initStorage initializes the storage layer (Badger)
func (a *App) initStorage() error {
	storageManager, err := badger.NewManager(a.Config, a.Logger)
	if err != nil {
		return fmt.Errorf("failed to create storage manager: %w", err)
	}

	a.StorageManager = storageManager
	a.Logger.Debug().
		Str("storage", "badger").
		Str("path", a.Config.Storage.Badger.Path).
		Msg("Storage layer initialized")

	return nil
}

// initServices initializes all business services in dependency order
func (a *App) initServices() error {
	chat, embedder, err := llm.NewServices(&a.Config.LLM, a.Logger)
	if err != nil {
		return fmt.Errorf("failed to create LLM services: %w", err)
	}
	a.LLMService = chat

	a.EmbeddingService = embeddings.NewService(embedder, a.Config.LLM.Ollama.EmbedModel, a.Logger)

	a.DocumentService = documents.NewService(
		a.StorageManager,
		a.EmbeddingService,
		a.Config.Storage.Collection,
		a.Logger,
	)

	a.AgentService = agent.NewService(
		a.DocumentService,
		a.LLMService,
		a.Config.Retrieval.DefaultResults,
		a.Logger,
	)

	return nil
}

// initHandlers initializes HTTP handlers
func (a *App) initHandlers() {
	a.DocumentHandler = handlers.NewDocumentHandler(a.DocumentService, a.Logger)
	a.SearchHandler = handlers.NewSearchHandler(a.DocumentService, a.Config.Retrieval.DefaultResults, a.Logger)
	a.QueryHandler = handlers.NewQueryHandler(a.AgentService, a.Logger)
	a.StatusHandler = handlers.NewStatusHandler(a.DocumentService, a.LLMService, &a.Config.LLM, a.Logger)
}

// loadSamples seeds the collection with sample documents when it is empty
func (a *App) loadSamples() error {
	if !a.Config.Retrieval.LoadSamples {
		return nil
	}

	ctx := context.Background()
	stats, err := a.DocumentService.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to read collection stats: %w", err)
	}
	if stats.DocumentCount > 0 {
		a.Logger.Debug().
			Int("documents", stats.DocumentCount).
			Msg("Collection not empty, skipping sample documents")
		return nil
	}

	count, err := documents.LoadSampleDocuments(ctx, a.DocumentService)
	if err != nil {
		return err
	}

	a.Logger.Info().Int("documents", count).Msg("Sample documents loaded")
	return nil
}

// Close closes all application resources
func (a *App) Close() error {
	if a.LLMService != nil {
		if err := a.LLMService.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close LLM service")
		}
	}

	if a.StorageManager != nil {
		if err := a.StorageManager.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close storage manager")
			return err
		}
	}

	a.Logger.Info().Msg("Application resources closed")
	return nil
}
