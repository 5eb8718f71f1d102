package interfaces

import "context"

// EmbeddingService generates embedding vectors for documents and queries.
// All vectors produced by one service instance share a single dimension.
type EmbeddingService interface {
	// GenerateEmbedding embeds a single document text.
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)

	// GenerateEmbeddings embeds a batch of document texts, preserving order.
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)

	// GenerateQueryEmbedding embeds a search query.
	GenerateQueryEmbedding(ctx context.Context, query string) ([]float32, error)

	// Dimension returns the embedding dimension, or 0 before the first
	// vector has been generated.
	Dimension() int

	// ModelName returns the embedding model identifier.
	ModelName() string
}
