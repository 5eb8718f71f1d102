package main

import (
	"fmt"
	"strings"

	"github.com/ternarybob/reperio/internal/models"
)

// formatSearchResults formats search results as markdown
func formatSearchResults(query string, results []models.SearchResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Search Results for %q (%d results)\n\n", query, len(results)))

	if len(results) == 0 {
		sb.WriteString("No results found.\n")
		return sb.String()
	}

	for i, result := range results {
		sb.WriteString(fmt.Sprintf("### %d. %s\n", i+1, result.ID))
		if source, ok := result.Metadata["source"]; ok && source != "" {
			sb.WriteString(fmt.Sprintf("**Source:** %s\n", source))
		}
		sb.WriteString(fmt.Sprintf("**Distance:** %.4f\n\n", result.Distance))

		content := result.Content
		if len(content) > 300 {
			content = content[:300] + "..."
		}
		sb.WriteString(content)
		sb.WriteString("\n\n---\n\n")
	}

	return sb.String()
}

// formatCollectionStats formats collection stats as markdown
func formatCollectionStats(stats models.CollectionStats) string {
	var sb strings.Builder
	sb.WriteString("## Collection Stats\n\n")
	sb.WriteString(fmt.Sprintf("**Collection:** %s\n", stats.CollectionName))
	sb.WriteString(fmt.Sprintf("**Documents:** %d\n", stats.DocumentCount))
	sb.WriteString(fmt.Sprintf("**Persist directory:** %s\n", stats.PersistDir))
	return sb.String()
}
