package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/reperio/internal/interfaces"
	"github.com/ternarybob/reperio/internal/models"
	"github.com/ternarybob/reperio/internal/services/documents"
)

// Service orchestrates retrieval-augmented queries: retrieve context,
// build the augmented prompt, forward to the LLM.
type Service struct {
	documents      interfaces.DocumentService
	llm            interfaces.LLMService
	defaultResults int
	logger         arbor.ILogger
}

// NewService creates the agent service
func NewService(documentService interfaces.DocumentService, llmService interfaces.LLMService, defaultResults int, logger arbor.ILogger) *Service {
	if defaultResults <= 0 {
		defaultResults = 3
	}
	return &Service{
		documents:      documentService,
		llm:            llmService,
		defaultResults: defaultResults,
		logger:         logger,
	}
}

// Query answers a user query. With context enabled the top matching
// documents are rendered into the prompt; otherwise the raw query goes
// to the LLM untouched.
func (s *Service) Query(ctx context.Context, req models.QueryRequest) (models.QueryResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return models.QueryResponse{}, fmt.Errorf("%w: query cannot be empty", models.ErrInvalidArgument)
	}

	nResults := req.NResults
	if nResults <= 0 {
		nResults = s.defaultResults
	}
	useContext := req.ContextEnabled()

	retrieved := []string{}
	prompt := req.Query

	if useContext {
		results, err := s.documents.Search(ctx, req.Query, nResults)
		if err != nil {
			return models.QueryResponse{}, err
		}
		for _, result := range results {
			retrieved = append(retrieved, result.Content)
		}
		prompt = BuildPrompt(req.Query, documents.FormatResults(results))
	}

	start := time.Now()
	response, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return models.QueryResponse{}, fmt.Errorf("llm generation failed: %w", err)
	}

	s.logger.Info().
		Str("query", req.Query).
		Bool("context_used", useContext).
		Int("retrieved", len(retrieved)).
		Dur("duration", time.Since(start)).
		Msg("Agent query completed")

	return models.QueryResponse{
		Query:              req.Query,
		Response:           response,
		RetrievedDocuments: retrieved,
		ContextUsed:        useContext,
		Model:              s.llm.ModelName(),
	}, nil
}

// HealthCheck verifies the underlying LLM is reachable
func (s *Service) HealthCheck(ctx context.Context) error {
	return s.llm.HealthCheck(ctx)
}

// ModelName returns the generation model identifier
func (s *Service) ModelName() string {
	return s.llm.ModelName()
}

// compile-time interface check
var _ interfaces.AgentService = (*Service)(nil)
