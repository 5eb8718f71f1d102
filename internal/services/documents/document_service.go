package documents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/reperio/internal/common"
	"github.com/ternarybob/reperio/internal/interfaces"
	"github.com/ternarybob/reperio/internal/models"
)

// Service is the document store: it validates input, derives
// embeddings, persists documents, and retrieves them by similarity.
type Service struct {
	storage    interfaces.VectorStorage
	embedder   interfaces.EmbeddingService
	collection string
	persistDir string
	logger     arbor.ILogger
}

// NewService creates the document store service
func NewService(storageManager interfaces.StorageManager, embedder interfaces.EmbeddingService, collection string, logger arbor.ILogger) *Service {
	return &Service{
		storage:    storageManager.VectorStorage(),
		embedder:   embedder,
		collection: collection,
		persistDir: storageManager.PersistDir(),
		logger:     logger,
	}
}

// AddDocuments embeds and stores a batch of documents. The batch is
// all-or-nothing: validation, embedding, and persistence must all
// succeed or the store is left untouched.
func (s *Service) AddDocuments(ctx context.Context, texts []string, ids []string, metadata []map[string]string) ([]string, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: documents cannot be empty", models.ErrInvalidArgument)
	}
	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("%w: document %d is empty", models.ErrInvalidArgument, i)
		}
	}
	if len(ids) > 0 && len(ids) != len(texts) {
		return nil, fmt.Errorf("%w: got %d ids for %d documents", models.ErrInvalidArgument, len(ids), len(texts))
	}
	if len(metadata) > 0 && len(metadata) != len(texts) {
		return nil, fmt.Errorf("%w: got %d metadata entries for %d documents", models.ErrInvalidArgument, len(metadata), len(texts))
	}

	// Auto-generate globally unique ids when the caller supplies none
	if len(ids) == 0 {
		ids = make([]string, len(texts))
		for i := range texts {
			ids[i] = common.NewDocumentID()
		}
	} else {
		seen := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if strings.TrimSpace(id) == "" {
				return nil, fmt.Errorf("%w: ids cannot be empty", models.ErrInvalidArgument)
			}
			if _, dup := seen[id]; dup {
				return nil, fmt.Errorf("%w: %s appears twice in the batch", models.ErrDuplicateID, id)
			}
			seen[id] = struct{}{}
		}
	}

	// Embed everything before any write so a failing document aborts
	// the whole batch
	vectors, err := s.embedder.GenerateEmbeddings(ctx, texts)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	docs := make([]*models.Document, len(texts))
	for i := range texts {
		docs[i] = &models.Document{
			ID:         ids[i],
			Collection: s.collection,
			Content:    texts[i],
			Metadata:   documentMetadata(metadata, i),
			Embedding:  vectors[i],
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}

	if err := s.storage.InsertBatch(docs); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("count", len(docs)).
		Str("collection", s.collection).
		Msg("Documents added")

	return ids, nil
}

// Search embeds the query and returns up to nResults documents ranked
// ascending by cosine distance. Asking for more results than stored
// truncates rather than failing; an empty collection yields an empty
// slice.
func (s *Service) Search(ctx context.Context, query string, nResults int) ([]models.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query cannot be empty", models.ErrInvalidArgument)
	}
	if nResults <= 0 {
		return nil, fmt.Errorf("%w: n_results must be positive", models.ErrInvalidArgument)
	}

	embedding, err := s.embedder.GenerateQueryEmbedding(ctx, query)
	if err != nil {
		return nil, err
	}

	// Empty collection: nothing to compare against
	count, err := s.storage.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return []models.SearchResult{}, nil
	}

	results, err := s.storage.Nearest(embedding, nResults)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("query", query).
		Int("requested", nResults).
		Int("returned", len(results)).
		Msg("Search completed")

	return results, nil
}

// SearchFormatted runs Search and renders the hits as the plain-text
// context block used for prompt injection.
func (s *Service) SearchFormatted(ctx context.Context, query string, nResults int) (string, error) {
	results, err := s.Search(ctx, query, nResults)
	if err != nil {
		return "", err
	}
	return FormatResults(results), nil
}

// DeleteCollection removes every document in the collection. Deleting
// an already empty collection succeeds.
func (s *Service) DeleteCollection(ctx context.Context) error {
	if err := s.storage.Clear(); err != nil {
		return err
	}

	s.logger.Info().Str("collection", s.collection).Msg("Collection deleted")
	return nil
}

// Stats returns the live state of the collection. The count is read
// from storage on every call, never cached.
func (s *Service) Stats(ctx context.Context) (models.CollectionStats, error) {
	count, err := s.storage.Count()
	if err != nil {
		return models.CollectionStats{}, err
	}

	return models.CollectionStats{
		CollectionName: s.collection,
		DocumentCount:  count,
		PersistDir:     s.persistDir,
	}, nil
}

// documentMetadata returns the caller's metadata for index i, defaulting
// to {"source": "unknown"} when absent. The map is copied so later
// caller mutation cannot reach stored documents.
func documentMetadata(metadata []map[string]string, i int) map[string]string {
	if len(metadata) == 0 || metadata[i] == nil {
		return map[string]string{"source": "unknown"}
	}
	copied := make(map[string]string, len(metadata[i]))
	for k, v := range metadata[i] {
		copied[k] = v
	}
	return copied
}

// compile-time interface check
var _ interfaces.DocumentService = (*Service)(nil)
