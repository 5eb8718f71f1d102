package common

import "github.com/google/uuid"

// NewDocumentID generates a globally unique document id.
// Auto-generated ids never collide across add calls, unlike
// positional doc_<index> schemes.
func NewDocumentID() string {
	return "doc_" + uuid.New().String()
}
