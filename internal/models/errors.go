package models

import "errors"

// Sentinel errors for the document store. Callers match with errors.Is;
// the HTTP layer maps them to status codes.
var (
	// ErrNotInitialized indicates the document store has not been opened yet.
	ErrNotInitialized = errors.New("document store not initialized")

	// ErrStorageInit indicates the persistent collection could not be opened.
	ErrStorageInit = errors.New("storage initialization failed")

	// ErrStorage indicates a general persistence failure.
	ErrStorage = errors.New("storage operation failed")

	// ErrInvalidArgument indicates malformed caller input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateID indicates a document id already exists in the collection
	// or appears twice in the same batch.
	ErrDuplicateID = errors.New("duplicate document id")

	// ErrEmbedding indicates the embedding provider failed or returned an
	// unusable vector.
	ErrEmbedding = errors.New("embedding generation failed")

	// ErrIndexWrite indicates the vector index rejected a write.
	ErrIndexWrite = errors.New("index write failed")

	// ErrIndexQuery indicates the vector index rejected a query.
	ErrIndexQuery = errors.New("index query failed")
)
