// Package stopwords holds the ordered set of words the engine excludes
// from document indexing and drops from non-introspective queries.
package stopwords

import (
	"sort"
	"strings"

	apperrors "github.com/avoronin/searchengine/pkg/errors"
	"github.com/avoronin/searchengine/internal/engine/tokenizer"
)

// Set is an ordered, deduplicated collection of valid, non-empty words.
type Set struct {
	words map[string]struct{}
}

// New tokenizes raw on ASCII spaces and validates each resulting word.
func New(raw string) (*Set, error) {
	return NewFromSlice(tokenizer.Split(raw))
}

// NewFromSlice validates each word individually. Empty strings are
// discarded silently; a control byte anywhere fails with InvalidArgument.
func NewFromSlice(words []string) (*Set, error) {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w == "" {
			continue
		}
		if !tokenizer.ValidWord(w) {
			return nil, apperrors.InvalidArgument("stop word %q contains a control byte", w)
		}
		s.words[w] = struct{}{}
	}
	return s, nil
}

// Contains reports whether w is a stop word.
func (s *Set) Contains(w string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[w]
	return ok
}

// Len returns the number of distinct stop words.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Sorted returns the stop words in ascending order.
func (s *Set) Sorted() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// String renders the stop words space-joined, ascending.
func (s *Set) String() string {
	return strings.Join(s.Sorted(), " ")
}
