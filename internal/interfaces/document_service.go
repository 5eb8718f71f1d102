package interfaces

import (
	"context"

	"github.com/ternarybob/reperio/internal/models"
)

// DocumentService is the document store: it embeds, persists, and
// retrieves documents by vector similarity.
type DocumentService interface {
	// AddDocuments embeds and stores a batch of documents. The batch is
	// all-or-nothing: any validation, embedding, or write failure leaves
	// the store untouched. Returns the ids under which the documents
	// were stored.
	AddDocuments(ctx context.Context, documents []string, ids []string, metadata []map[string]string) ([]string, error)

	// Search returns up to nResults documents ranked ascending by cosine
	// distance to the query. Asking for more results than stored
	// truncates rather than failing.
	Search(ctx context.Context, query string, nResults int) ([]models.SearchResult, error)

	// SearchFormatted runs Search and renders the hits as a plain-text
	// context block for prompt injection.
	SearchFormatted(ctx context.Context, query string, nResults int) (string, error)

	// DeleteCollection removes every document in the collection.
	// Deleting an already empty collection succeeds.
	DeleteCollection(ctx context.Context) error

	// Stats returns the live state of the collection.
	Stats(ctx context.Context) (models.CollectionStats, error)
}
