package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createSearchDocumentsTool returns the search_documents tool definition
func createSearchDocumentsTool() mcp.Tool {
	return mcp.NewTool("search_documents",
		mcp.WithDescription("Search the Reperio document collection by semantic similarity"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Natural-language search query"),
		),
		mcp.WithNumber("n_results",
			mcp.Description("Maximum results to return (default: configured retrieval count, max: 100)"),
		),
	)
}

// createAddDocumentTool returns the add_document tool definition
func createAddDocumentTool() mcp.Tool {
	return mcp.NewTool("add_document",
		mcp.WithDescription("Add a document to the Reperio collection"),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Document text to embed and store"),
		),
		mcp.WithString("id",
			mcp.Description("Document ID (auto-generated when omitted)"),
		),
		mcp.WithString("source",
			mcp.Description("Source label stored in metadata (default: unknown)"),
		),
	)
}

// createCollectionStatsTool returns the collection_stats tool definition
func createCollectionStatsTool() mcp.Tool {
	return mcp.NewTool("collection_stats",
		mcp.WithDescription("Report document count and storage location for the collection"),
	)
}
