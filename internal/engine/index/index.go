// Package index implements the inverted index: a forward map from word to
// per-document term frequency, its mirror reverse map from document to
// per-word term frequency, the live document id set, and per-document
// metadata (rating, status).
//
// The top-level maps carry no internal locking. Per the engine's
// concurrency contract, a mutating call (Add, Remove, RemoveParallel)
// requires exclusive access — no concurrent reader or writer may overlap
// it — while any number of read-only calls may run concurrently against
// a fixed index state. Only the sharded concurrentmap.Map used by the
// parallel scorer has internal locking.
package index

import (
	"sort"
	"sync"

	"github.com/avoronin/searchengine/internal/engine/tokenizer"
)

// DocumentStatus is the lifecycle tag attached to a document at add time.
type DocumentStatus int

const (
	Actual DocumentStatus = iota
	Irrelevant
	Banned
	Removed
)

func (s DocumentStatus) String() string {
	switch s {
	case Actual:
		return "ACTUAL"
	case Irrelevant:
		return "IRRELEVANT"
	case Banned:
		return "BANNED"
	case Removed:
		return "REMOVED"
	default:
		return "UNKNOWN"
	}
}

// Meta is the metadata stored for a live document.
type Meta struct {
	Rating        int32
	Status        DocumentStatus
	WordFrequency map[string]float64
}

// Index is the engine's inverted index plus document bookkeeping.
type Index struct {
	forward map[string]map[int32]float64
	reverse map[int32]map[string]float64
	ids     map[int32]struct{}
	meta    map[int32]*Meta
}

// New returns an empty Index.
func New() *Index {
	return &Index{
		forward: make(map[string]map[int32]float64),
		reverse: make(map[int32]map[string]float64),
		ids:     make(map[int32]struct{}),
		meta:    make(map[int32]*Meta),
	}
}

// Exists reports whether id is currently a live document.
func (idx *Index) Exists(id int32) bool {
	_, ok := idx.ids[id]
	return ok
}

// DocCount returns the number of live documents.
func (idx *Index) DocCount() int {
	return len(idx.ids)
}

// IDs returns the live document ids in ascending order.
func (idx *Index) IDs() []int32 {
	out := make([]int32, 0, len(idx.ids))
	for id := range idx.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Meta returns a copy of document id's metadata, and whether it exists.
func (idx *Index) Meta(id int32) (Meta, bool) {
	m, ok := idx.meta[id]
	if !ok {
		return Meta{}, false
	}
	return *m, true
}

// WordFrequencies returns document id's reverse word-frequency map, or an
// empty (non-nil) map if id does not exist.
func (idx *Index) WordFrequencies(id int32) map[string]float64 {
	freqs, ok := idx.reverse[id]
	if !ok {
		return map[string]float64{}
	}
	out := make(map[string]float64, len(freqs))
	for w, f := range freqs {
		out[w] = f
	}
	return out
}

// PostingsFor returns the forward-index posting map for word: document id
// to term frequency. The zero value (nil map) means the word is absent
// from the index.
func (idx *Index) PostingsFor(word string) map[int32]float64 {
	return idx.forward[word]
}

// DocumentFrequency returns the number of documents containing word.
func (idx *Index) DocumentFrequency(word string) int {
	return len(idx.forward[word])
}

// Add inserts a new document. words has already been through stop-word
// filtering (see SplitStopped, called by the Engine facade); Add itself
// only computes term frequencies and updates the forward, reverse, id-set
// and metadata maps. rating is precomputed by the caller (see
// internal/engine's rating averaging, which must avoid overflow — see
// Engine.Add).
func (idx *Index) Add(id int32, words []string, status DocumentStatus, rating int32) {
	freq := make(map[string]float64, len(words))
	if len(words) > 0 {
		inv := 1.0 / float64(len(words))
		for _, w := range words {
			freq[w] += inv
		}
	}

	for w, f := range freq {
		bucket, ok := idx.forward[w]
		if !ok {
			bucket = make(map[int32]float64)
			idx.forward[w] = bucket
		}
		bucket[id] = f
	}

	idx.reverse[id] = freq
	idx.meta[id] = &Meta{Rating: rating, Status: status, WordFrequency: freq}
	idx.ids[id] = struct{}{}
}

// Remove erases id from the forward, reverse, id-set, and metadata maps.
// A no-op if id is not present. Emptied forward-map word entries are
// pruned so that "a word appears in the forward index iff at least one
// document contains it" holds exactly.
func (idx *Index) Remove(id int32) {
	freq, ok := idx.reverse[id]
	if !ok {
		return
	}
	for w := range freq {
		bucket := idx.forward[w]
		delete(bucket, id)
		if len(bucket) == 0 {
			delete(idx.forward, w)
		}
	}
	delete(idx.reverse, id)
	delete(idx.ids, id)
	delete(idx.meta, id)
}

// RemoveParallel erases id the same way Remove does, but parallelizes the
// per-word forward-map erasures across goroutines. This is safe without
// extra locking because each goroutine only mutates the inner per-word
// map for a word no other goroutine touches in this call — the shared
// outer forward map itself is never written concurrently. The tradeoff,
// matching the spec's tolerated implementation choice, is that emptied
// word entries are not pruned from the outer map: a later PostingsFor for
// that word returns an empty, non-nil map rather than no entry at all,
// which is observationally identical (queries for the word still return
// zero documents).
func (idx *Index) RemoveParallel(id int32) {
	freq, ok := idx.reverse[id]
	if !ok {
		return
	}
	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}

	var wg sync.WaitGroup
	for _, w := range words {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			if bucket, ok := idx.forward[w]; ok {
				delete(bucket, id)
			}
		}()
	}
	wg.Wait()

	delete(idx.reverse, id)
	delete(idx.ids, id)
	delete(idx.meta, id)
}

// SplitStopped tokenizes body, drops words the stop-word predicate
// accepts, and returns the surviving tokens plus a bool reporting whether
// every token in body was a valid word.
func SplitStopped(body string, isStop func(string) bool) (words []string, allValid bool) {
	tokens := tokenizer.Split(body)
	words = make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !tokenizer.ValidWord(t) {
			return nil, false
		}
		if isStop(t) {
			continue
		}
		words = append(words, t)
	}
	return words, true
}
