// Package render formats engine results for display, with no business
// logic of its own. Grounded verbatim on document.cpp's PrintDocument and
// PrintMatchDocumentResult.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/avoronin/searchengine/internal/engine/index"
	"github.com/avoronin/searchengine/internal/engine/rank"
)

// Document writes d in the engine's canonical single-line form.
func Document(w io.Writer, d rank.Document) {
	fmt.Fprintf(w, "{ document_id = %d, relevance = %g, rating = %d }\n", d.ID, d.Relevance, d.Rating)
}

// Documents writes each document in docs, one per line.
func Documents(w io.Writer, docs []rank.Document) {
	for _, d := range docs {
		Document(w, d)
	}
}

// MatchResult writes a match introspection result in the engine's
// canonical single-line form.
func MatchResult(w io.Writer, id int32, words []string, status index.DocumentStatus) {
	fmt.Fprintf(w, "{ document_id = %d, status = %s, words = %s }\n", id, status, strings.Join(words, " "))
}
