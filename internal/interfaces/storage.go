package interfaces

import "github.com/ternarybob/reperio/internal/models"

// VectorStorage persists documents with their embeddings and serves
// brute-force nearest-neighbor queries over one collection.
type VectorStorage interface {
	// InsertBatch stores all documents in a single transaction. A
	// duplicate id or write failure rolls back the whole batch.
	InsertBatch(docs []*models.Document) error

	// Get retrieves a document by id. Returns (nil, nil) when absent.
	Get(id string) (*models.Document, error)

	// Nearest returns up to k stored documents ranked ascending by
	// cosine distance to the query vector.
	Nearest(embedding []float32, k int) ([]models.SearchResult, error)

	// Count returns the exact number of stored documents.
	Count() (int, error)

	// Clear removes every document in the collection.
	Clear() error
}

// StorageManager provides access to storage backends and owns their
// lifecycle.
type StorageManager interface {
	VectorStorage() VectorStorage
	PersistDir() string
	Close() error
}
