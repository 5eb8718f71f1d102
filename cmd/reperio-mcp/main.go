package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"

	"github.com/ternarybob/reperio/internal/common"
	"github.com/ternarybob/reperio/internal/services/documents"
	"github.com/ternarybob/reperio/internal/services/embeddings"
	"github.com/ternarybob/reperio/internal/services/llm"
	"github.com/ternarybob/reperio/internal/storage/badger"
)

func main() {
	configPath := os.Getenv("REPERIO_CONFIG")
	if configPath == "" {
		configPath = "reperio.toml"
	}

	config, err := common.LoadFromFiles(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Minimal logging to avoid cluttering MCP stdio
	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:             arbor_models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		DisableTimestamp: false,
	}).WithLevelFromString("warn")

	storageManager, err := badger.NewManager(config, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize storage")
	}
	defer storageManager.Close()

	_, embedder, err := llm.NewServices(&config.LLM, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize LLM services")
	}
	defer embedder.Close()

	embeddingService := embeddings.NewService(embedder, config.LLM.Ollama.EmbedModel, logger)
	documentService := documents.NewService(storageManager, embeddingService, config.Storage.Collection, logger)

	mcpServer := server.NewMCPServer(
		"reperio",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(createSearchDocumentsTool(), handleSearchDocuments(documentService, config.Retrieval.DefaultResults, logger))
	mcpServer.AddTool(createAddDocumentTool(), handleAddDocument(documentService, logger))
	mcpServer.AddTool(createCollectionStatsTool(), handleCollectionStats(documentService, logger))

	// Blocks on stdio
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
