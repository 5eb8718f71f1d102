package models

import "time"

// Document represents a stored document with its derived embedding.
type Document struct {
	ID         string            `json:"id" badgerhold:"key"`
	Collection string            `json:"collection" badgerhold:"index"`
	Content    string            `json:"content"`
	Metadata   map[string]string `json:"metadata"`
	Embedding  []float32         `json:"-"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// SearchResult is a single ranked hit from a similarity search.
// Distance is cosine distance (1 - cosine similarity); lower is more similar.
type SearchResult struct {
	ID       string            `json:"id"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata"`
	Distance float64           `json:"distance"`
}

// CollectionStats describes the current state of a collection.
type CollectionStats struct {
	CollectionName string `json:"collection_name"`
	DocumentCount  int    `json:"document_count"`
	PersistDir     string `json:"persist_dir"`
}
