package documents

import (
	"context"
	"fmt"

	"github.com/ternarybob/reperio/internal/interfaces"
)

// sampleDocuments seed an empty collection so search and agent queries
// work out of the box.
var sampleDocuments = []string{
	"Artificial Intelligence is revolutionizing many industries by enabling machines to learn from data and make intelligent decisions without explicit programming.",
	"The Model Context Protocol (MCP) enables modular tool use for AI agents by providing a standardized way to connect language models to external services.",
	"Vector databases store embeddings of text, enabling fast semantic similarity search and retrieval of relevant documents.",
	"Retrieval-Augmented Generation (RAG) combines the benefits of retrieval and generation, allowing AI systems to ground their responses in factual, retrieved content.",
	"Ollama provides a simple way to run large language models locally, supporting models like Mistral, Llama, and others without requiring expensive cloud infrastructure.",
}

// LoadSampleDocuments adds the seed documents to the store. Returns the
// number of documents loaded.
func LoadSampleDocuments(ctx context.Context, service interfaces.DocumentService) (int, error) {
	ids := make([]string, len(sampleDocuments))
	metadata := make([]map[string]string, len(sampleDocuments))
	for i := range sampleDocuments {
		ids[i] = fmt.Sprintf("sample_doc_%d", i)
		metadata[i] = map[string]string{"source": "sample", "type": "general_info"}
	}

	if _, err := service.AddDocuments(ctx, sampleDocuments, ids, metadata); err != nil {
		return 0, err
	}
	return len(sampleDocuments), nil
}
