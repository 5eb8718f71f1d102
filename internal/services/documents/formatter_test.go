package documents

import (
	"strings"
	"testing"

	"github.com/ternarybob/reperio/internal/models"
)

func TestFormatResultsEmpty(t *testing.T) {
	got := FormatResults(nil)
	if got != "No documents found matching the query." {
		t.Errorf("unexpected no-results message: %q", got)
	}
}

func TestFormatResultsSingle(t *testing.T) {
	results := []models.SearchResult{
		{
			ID:       "doc_1",
			Content:  "Short document text.",
			Metadata: map[string]string{"source": "wiki"},
			Distance: 0.1,
		},
	}

	want := "Retrieved Documents:\n" +
		strings.Repeat("-", 50) + "\n" +
		"\n[Document 1]\n" +
		"Content: Short document text.\n" +
		"Source: wiki\n"

	if got := FormatResults(results); got != want {
		t.Errorf("unexpected output:\n got: %q\nwant: %q", got, want)
	}
}

func TestFormatResultsNumbering(t *testing.T) {
	results := []models.SearchResult{
		{Content: "first", Metadata: map[string]string{"source": "a"}},
		{Content: "second", Metadata: map[string]string{"source": "b"}},
		{Content: "third", Metadata: map[string]string{"source": "c"}},
	}

	got := FormatResults(results)
	for _, marker := range []string{"[Document 1]", "[Document 2]", "[Document 3]"} {
		if !strings.Contains(got, marker) {
			t.Errorf("output missing %s:\n%s", marker, got)
		}
	}
}

func TestFormatResultsSourceFallback(t *testing.T) {
	tests := []struct {
		name     string
		metadata map[string]string
		want     string
	}{
		{"missing metadata", nil, "Source: unknown\n"},
		{"missing source key", map[string]string{"type": "note"}, "Source: unknown\n"},
		{"empty source", map[string]string{"source": ""}, "Source: unknown\n"},
		{"explicit source", map[string]string{"source": "sample"}, "Source: sample\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatResults([]models.SearchResult{{Content: "x", Metadata: tt.metadata}})
			if !strings.Contains(got, tt.want) {
				t.Errorf("expected %q in output:\n%s", tt.want, got)
			}
		})
	}
}

func TestTruncateContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantLen int
		cut     bool
	}{
		{"short", strings.Repeat("a", 10), 10, false},
		{"exactly at limit", strings.Repeat("a", 500), 500, false},
		{"one over limit", strings.Repeat("a", 501), 503, true},
		{"far over limit", strings.Repeat("a", 2000), 503, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateContent(tt.content, maxExcerptLength)
			if len(got) != tt.wantLen {
				t.Errorf("expected length %d, got %d", tt.wantLen, len(got))
			}
			if tt.cut && !strings.HasSuffix(got, "...") {
				t.Error("truncated content must end with ellipsis")
			}
			if !tt.cut && strings.HasSuffix(got, "...") && !strings.HasSuffix(tt.content, "...") {
				t.Error("untruncated content must not gain an ellipsis")
			}
		})
	}
}

func TestTruncateContentMultibyte(t *testing.T) {
	// 501 runes of a multi-byte character must cut cleanly at 500 runes
	content := strings.Repeat("é", 501)
	got := truncateContent(content, maxExcerptLength)

	runes := []rune(strings.TrimSuffix(got, "..."))
	if len(runes) != 500 {
		t.Errorf("expected 500 runes before ellipsis, got %d", len(runes))
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("expected ellipsis suffix")
	}
}
