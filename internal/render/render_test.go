package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/avoronin/searchengine/internal/engine/index"
	"github.com/avoronin/searchengine/internal/engine/rank"
)

func TestDocument(t *testing.T) {
	var buf bytes.Buffer
	Document(&buf, rank.Document{ID: 1, Relevance: 0.75, Rating: 2})
	got := buf.String()
	for _, want := range []string{"document_id = 1", "relevance = 0.75", "rating = 2"} {
		if !strings.Contains(got, want) {
			t.Errorf("Document() output %q missing %q", got, want)
		}
	}
}

func TestMatchResult(t *testing.T) {
	var buf bytes.Buffer
	MatchResult(&buf, 64, []string{"cat", "city"}, index.Actual)
	got := buf.String()
	for _, want := range []string{"document_id = 64", "status = ACTUAL", "cat city"} {
		if !strings.Contains(got, want) {
			t.Errorf("MatchResult() output %q missing %q", got, want)
		}
	}
}
