package models

// AddDocumentsRequest is the payload for adding documents to the store.
// IDs and Metadata are optional; when present they must match the length
// of Documents.
type AddDocumentsRequest struct {
	Documents []string            `json:"documents" validate:"required,min=1,dive,required"`
	IDs       []string            `json:"ids,omitempty"`
	Metadata  []map[string]string `json:"metadata,omitempty"`
}

// AddDocumentsResponse reports the outcome of a batch add.
type AddDocumentsResponse struct {
	Status         string   `json:"status"`
	DocumentsAdded int      `json:"documents_added"`
	TotalDocuments int      `json:"total_documents"`
	IDs            []string `json:"ids"`
}

// SearchRequest is the payload for a similarity search.
type SearchRequest struct {
	Query    string `json:"query" validate:"required"`
	NResults int    `json:"n_results" validate:"gte=0"`
}

// SearchResponse carries ranked search results.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
	Count   int            `json:"count"`
}

// QueryRequest is the payload for a retrieval-augmented agent query.
// UseContext defaults to true when omitted.
type QueryRequest struct {
	Query      string `json:"query" validate:"required"`
	UseContext *bool  `json:"use_context,omitempty"`
	NResults   int    `json:"n_results" validate:"gte=0"`
}

// ContextEnabled resolves the optional UseContext flag.
func (r *QueryRequest) ContextEnabled() bool {
	return r.UseContext == nil || *r.UseContext
}

// QueryResponse is the agent's answer plus retrieval metadata.
type QueryResponse struct {
	Query              string   `json:"query"`
	Response           string   `json:"response"`
	RetrievedDocuments []string `json:"retrieved_documents"`
	ContextUsed        bool     `json:"context_used"`
	Model              string   `json:"model"`
}
