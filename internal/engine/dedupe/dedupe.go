// Package dedupe identifies and removes documents whose surviving word
// set duplicates an earlier document's, irrespective of term frequency.
package dedupe

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/avoronin/searchengine/internal/engine"
)

// sameWordSet reports whether lhs and rhs have identical key sets,
// ignoring the frequency values themselves.
func sameWordSet(lhs, rhs map[string]float64) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	for w := range lhs {
		if _, ok := rhs[w]; !ok {
			return false
		}
	}
	return true
}

// FindDuplicateIds returns, ascending, the ids of documents whose word
// set duplicates an earlier (lower-id) document's. For each id i not
// already marked a duplicate, every later id j is compared against it;
// a match marks j, never i, regardless of how many earlier ids match it.
func FindDuplicateIds(e *engine.Engine) []int32 {
	ids := e.IterateIDs()
	duplicate := make(map[int32]struct{})

	for i, lhsID := range ids {
		if _, marked := duplicate[lhsID]; marked {
			continue
		}
		lhs := e.WordFrequencies(lhsID)
		for _, rhsID := range ids[i+1:] {
			if _, marked := duplicate[rhsID]; marked {
				continue
			}
			rhs := e.WordFrequencies(rhsID)
			if sameWordSet(lhs, rhs) {
				duplicate[rhsID] = struct{}{}
			}
		}
	}

	out := make([]int32, 0, len(duplicate))
	for id := range duplicate {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// RemoveDuplicates removes every duplicate document found by
// FindDuplicateIds, logging each removal.
func RemoveDuplicates(e *engine.Engine, log *slog.Logger) {
	if log == nil {
		log = e.Logger()
	}
	for _, id := range FindDuplicateIds(e) {
		e.Remove(id)
		log.Info(fmt.Sprintf("Found duplicate document id %d", id), "id", id)
		if m := e.Metrics(); m != nil {
			m.DuplicatesRemoved.Inc()
		}
	}
}
