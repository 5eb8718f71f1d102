package embeddings

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/reperio/internal/interfaces"
	"github.com/ternarybob/reperio/internal/models"
)

// Provider is the slice of LLMService the embedding pipeline needs.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Service generates embeddings through an injected provider and
// enforces a consistent vector dimension across the collection.
type Service struct {
	provider  Provider
	modelName string
	logger    arbor.ILogger

	mu        sync.Mutex
	dimension int // fixed by the first generated vector
}

// NewService creates an embedding service backed by the given provider
func NewService(provider Provider, modelName string, logger arbor.ILogger) *Service {
	return &Service{
		provider:  provider,
		modelName: modelName,
		logger:    logger,
	}
}

// GenerateEmbedding embeds a single document text
func (s *Service) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text cannot be empty", models.ErrEmbedding)
	}

	start := time.Now()
	embedding, err := s.provider.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrEmbedding, err)
	}
	if len(embedding) == 0 {
		return nil, fmt.Errorf("%w: provider returned an empty vector", models.ErrEmbedding)
	}

	if err := s.checkDimension(len(embedding)); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int("text_length", len(text)).
		Int("dimension", len(embedding)).
		Dur("duration", time.Since(start)).
		Msg("Embedding generated")

	return embedding, nil
}

// GenerateEmbeddings embeds a batch of texts, preserving order. The
// first failure aborts the batch.
func (s *Service) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))
	for i, text := range texts {
		embedding, err := s.GenerateEmbedding(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		vectors = append(vectors, embedding)
	}
	return vectors, nil
}

// GenerateQueryEmbedding embeds a search query. Queries and documents
// share one embedding space.
func (s *Service) GenerateQueryEmbedding(ctx context.Context, query string) ([]float32, error) {
	return s.GenerateEmbedding(ctx, query)
}

// Dimension returns the embedding dimension, 0 before first use
func (s *Service) Dimension() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dimension
}

// ModelName returns the embedding model identifier
func (s *Service) ModelName() string {
	return s.modelName
}

// checkDimension pins the dimension on first use and rejects drift
func (s *Service) checkDimension(dim int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dimension == 0 {
		s.dimension = dim
		return nil
	}
	if dim != s.dimension {
		return fmt.Errorf("%w: dimension %d does not match collection dimension %d", models.ErrEmbedding, dim, s.dimension)
	}
	return nil
}

// compile-time interface check
var _ interfaces.EmbeddingService = (*Service)(nil)
