package interfaces

import (
	"context"

	"github.com/ternarybob/reperio/internal/models"
)

// AgentService answers user queries, optionally grounding the LLM in
// retrieved document context.
type AgentService interface {
	// Query retrieves context (unless disabled), builds the augmented
	// prompt, and forwards it to the LLM.
	Query(ctx context.Context, req models.QueryRequest) (models.QueryResponse, error)

	// HealthCheck verifies the underlying LLM is reachable.
	HealthCheck(ctx context.Context) error

	// ModelName returns the generation model identifier.
	ModelName() string
}
