package badger

import (
	"errors"
	"fmt"
	"sort"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/ternarybob/reperio/internal/models"
)

// VectorStorage persists documents with embeddings for one collection
// and serves brute-force cosine nearest-neighbor queries.
type VectorStorage struct {
	db         *BadgerDB
	collection string
	logger     arbor.ILogger
}

// NewVectorStorage creates a vector storage scoped to a collection
func NewVectorStorage(db *BadgerDB, collection string, logger arbor.ILogger) *VectorStorage {
	return &VectorStorage{
		db:         db,
		collection: collection,
		logger:     logger,
	}
}

// InsertBatch stores all documents in one transaction. Duplicate ids,
// within the batch or against stored documents, roll back the whole
// batch with models.ErrDuplicateID.
func (s *VectorStorage) InsertBatch(docs []*models.Document) error {
	if len(docs) == 0 {
		return nil
	}

	store := s.db.Store()
	err := store.Badger().Update(func(tx *badgerdb.Txn) error {
		for _, doc := range docs {
			if err := store.TxInsert(tx, doc.ID, doc); err != nil {
				if errors.Is(err, badgerhold.ErrKeyExists) {
					return fmt.Errorf("%w: %s", models.ErrDuplicateID, doc.ID)
				}
				return fmt.Errorf("%w: %s: %v", models.ErrIndexWrite, doc.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, models.ErrDuplicateID) || errors.Is(err, models.ErrIndexWrite) {
			return err
		}
		return fmt.Errorf("%w: %v", models.ErrIndexWrite, err)
	}

	s.logger.Debug().
		Int("count", len(docs)).
		Str("collection", s.collection).
		Msg("Documents inserted")

	return nil
}

// Get retrieves a document by id. Returns (nil, nil) when not found.
func (s *VectorStorage) Get(id string) (*models.Document, error) {
	var doc models.Document
	err := s.db.Store().Get(id, &doc)
	if err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	return &doc, nil
}

// Nearest scans the collection and returns up to k results sorted
// ascending by cosine distance. k larger than the stored count
// truncates; an empty collection yields an empty slice.
func (s *VectorStorage) Nearest(embedding []float32, k int) ([]models.SearchResult, error) {
	if k <= 0 {
		return []models.SearchResult{}, nil
	}

	var docs []models.Document
	if err := s.db.Store().Find(&docs, badgerhold.Where("Collection").Eq(s.collection)); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrIndexQuery, err)
	}

	results := make([]models.SearchResult, 0, len(docs))
	for i := range docs {
		distance, err := CosineDistance(embedding, docs[i].Embedding)
		if err != nil {
			return nil, fmt.Errorf("%w: document %s: %v", models.ErrIndexQuery, docs[i].ID, err)
		}
		results = append(results, models.SearchResult{
			ID:       docs[i].ID,
			Content:  docs[i].Content,
			Metadata: docs[i].Metadata,
			Distance: distance,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// Count returns the exact number of documents in the collection
func (s *VectorStorage) Count() (int, error) {
	count, err := s.db.Store().Count(&models.Document{}, badgerhold.Where("Collection").Eq(s.collection))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	return int(count), nil
}

// Clear removes every document in the collection. Clearing an empty
// collection is a no-op.
func (s *VectorStorage) Clear() error {
	if err := s.db.Store().DeleteMatching(&models.Document{}, badgerhold.Where("Collection").Eq(s.collection)); err != nil {
		return fmt.Errorf("%w: %v", models.ErrStorage, err)
	}

	s.logger.Debug().Str("collection", s.collection).Msg("Collection cleared")
	return nil
}
