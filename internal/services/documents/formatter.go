package documents

import (
	"fmt"
	"strings"

	"github.com/ternarybob/reperio/internal/models"
)

const (
	// maxExcerptLength caps the content excerpt per formatted result
	maxExcerptLength = 500

	// NoResultsMessage is returned when a search matches nothing
	NoResultsMessage = "No documents found matching the query."

	// defaultSource labels results whose metadata carries no source
	defaultSource = "unknown"
)

// FormatResults renders ranked search results as a plain-text context
// block:
//
//	Retrieved Documents:
//	--------------------------------------------------
//
//	[Document 1]
//	Content: <excerpt>
//	Source: <source>
//
// Content longer than 500 characters is truncated with a trailing
// ellipsis. Results without a source are labeled "unknown".
func FormatResults(results []models.SearchResult) string {
	if len(results) == 0 {
		return NoResultsMessage
	}

	var b strings.Builder
	b.WriteString("Retrieved Documents:\n")
	b.WriteString(strings.Repeat("-", 50))
	b.WriteString("\n")

	for i, result := range results {
		b.WriteString(fmt.Sprintf("\n[Document %d]\n", i+1))
		b.WriteString("Content: ")
		b.WriteString(truncateContent(result.Content, maxExcerptLength))
		b.WriteString("\n")
		b.WriteString("Source: ")
		b.WriteString(resultSource(result.Metadata))
		b.WriteString("\n")
	}

	return b.String()
}

// truncateContent limits content to maxChars characters, appending an
// ellipsis only when something was cut. Counts runes so multi-byte
// characters are never split.
func truncateContent(content string, maxChars int) string {
	runes := []rune(content)
	if len(runes) <= maxChars {
		return content
	}
	return string(runes[:maxChars]) + "..."
}

func resultSource(metadata map[string]string) string {
	if source := metadata["source"]; source != "" {
		return source
	}
	return defaultSource
}
