// Package query parses a raw query string into plus/minus word sets.
package query

import (
	"sort"

	"github.com/avoronin/searchengine/internal/engine/tokenizer"
	apperrors "github.com/avoronin/searchengine/pkg/errors"
)

// Query is the parsed form of a raw query: two disjoint word sets. A
// word can never appear in both — if the same body is given with and
// without a leading '-', the minus form wins (see Parse).
type Query struct {
	Plus  map[string]struct{}
	Minus map[string]struct{}
}

// StopWords is the subset of stopwords.Set's contract Parse needs,
// avoiding an import cycle between query and stopwords/engine.
type StopWords interface {
	Contains(word string) bool
}

// Word is a single parsed query token.
type Word struct {
	Body    string
	IsMinus bool
	IsStop  bool
}

// ParseWord validates and classifies one raw token. It fails with
// InvalidArgument if the token (or its minus-stripped body) contains a
// control byte, or if it is a malformed minus-word (--x, -, or a bare
// "-" with nothing after it).
func ParseWord(raw string, stop StopWords) (Word, error) {
	if !tokenizer.ValidWord(raw) {
		return Word{}, apperrors.InvalidArgument("query word %q contains a control byte", raw)
	}
	body, isMinus, ok := tokenizer.SplitMinus(raw)
	if !ok {
		return Word{}, apperrors.InvalidArgument("query word %q is a malformed minus-word", raw)
	}
	return Word{Body: body, IsMinus: isMinus, IsStop: stop != nil && stop.Contains(body)}, nil
}

// Parse splits raw on ASCII spaces, classifies each token, and places its
// body into Plus or Minus. When allWords is false (ordinary search),
// stop-words are dropped entirely; when true (match introspection),
// stop-words are kept so the caller can still detect them in documents.
func Parse(raw string, allWords bool, stop StopWords) (Query, error) {
	q := Query{Plus: make(map[string]struct{}), Minus: make(map[string]struct{})}
	for _, tok := range tokenizer.Split(raw) {
		w, err := ParseWord(tok, stop)
		if err != nil {
			return Query{}, err
		}
		if w.IsStop && !allWords {
			continue
		}
		if w.IsMinus {
			q.Minus[w.Body] = struct{}{}
			delete(q.Plus, w.Body)
		} else if _, excluded := q.Minus[w.Body]; !excluded {
			q.Plus[w.Body] = struct{}{}
		}
	}
	return q, nil
}

// PlusWords returns the plus-word bodies, ascending.
func (q Query) PlusWords() []string {
	return sortedKeys(q.Plus)
}

// MinusWords returns the minus-word bodies, ascending.
func (q Query) MinusWords() []string {
	return sortedKeys(q.Minus)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
