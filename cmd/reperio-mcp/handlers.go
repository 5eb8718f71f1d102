package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/reperio/internal/interfaces"
)

// handleSearchDocuments implements the search_documents tool
func handleSearchDocuments(documentService interfaces.DocumentService, defaultResults int, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil || query == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: query parameter is required"),
				},
			}, nil
		}

		nResults := request.GetInt("n_results", defaultResults)
		if nResults > 100 {
			nResults = 100
		}

		results, err := documentService.Search(ctx, query, nResults)
		if err != nil {
			logger.Error().Err(err).Msg("Search failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Search error: %v", err)),
				},
			}, nil
		}

		markdown := formatSearchResults(query, results)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}

// handleAddDocument implements the add_document tool
func handleAddDocument(documentService interfaces.DocumentService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		content, err := request.RequireString("content")
		if err != nil || content == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: content parameter is required"),
				},
			}, nil
		}

		var ids []string
		if id := request.GetString("id", ""); id != "" {
			ids = []string{id}
		}

		var metadata []map[string]string
		if source := request.GetString("source", ""); source != "" {
			metadata = []map[string]string{{"source": source}}
		}

		added, err := documentService.AddDocuments(ctx, []string{content}, ids, metadata)
		if err != nil {
			logger.Error().Err(err).Msg("Add document failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Add error: %v", err)),
				},
			}, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(fmt.Sprintf("Document added with ID %s", added[0])),
			},
		}, nil
	}
}

// handleCollectionStats implements the collection_stats tool
func handleCollectionStats(documentService interfaces.DocumentService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stats, err := documentService.Stats(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Stats failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Stats error: %v", err)),
				},
			}, nil
		}

		markdown := formatCollectionStats(stats)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(markdown),
			},
		}, nil
	}
}
