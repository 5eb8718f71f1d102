package interfaces

import "context"

// LLMMode represents the operational mode of the LLM service
type LLMMode string

const (
	// LLMModeLocal indicates a locally hosted model (Ollama)
	LLMModeLocal LLMMode = "local"
	// LLMModeCloud indicates a cloud API provider (Anthropic)
	LLMModeCloud LLMMode = "cloud"
)

// LLMService abstracts a text-generation backend.
type LLMService interface {
	// Generate produces a completion for a fully assembled prompt.
	Generate(ctx context.Context, prompt string) (string, error)

	// Embed converts text into an embedding vector. Providers without an
	// embedding endpoint return an error.
	Embed(ctx context.Context, text string) ([]float32, error)

	// HealthCheck verifies the backend is reachable and usable.
	HealthCheck(ctx context.Context) error

	// GetMode reports whether the service is local or cloud backed.
	GetMode() LLMMode

	// ModelName returns the generation model identifier.
	ModelName() string

	// Close releases any held resources.
	Close() error
}
