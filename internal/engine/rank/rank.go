// Package rank computes TF-IDF relevance for documents matching a query
// and produces the sorted, truncated top-k result the engine returns to
// callers.
package rank

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/avoronin/searchengine/internal/engine/concurrentmap"
	"github.com/avoronin/searchengine/internal/engine/index"
	"github.com/avoronin/searchengine/internal/engine/query"
)

// MaxResultDocumentCount caps the number of documents find-top returns.
const MaxResultDocumentCount = 5

// relevanceEpsilon is the tolerance used to treat two relevance scores as
// tied, breaking the tie by descending rating instead.
const relevanceEpsilon = 1e-6

// Document is one ranked search result.
type Document struct {
	ID        int32
	Relevance float64
	Rating    int32
}

// Predicate filters candidate documents by id, status, and rating. The
// default search predicate is status == Actual.
type Predicate func(id int32, status index.DocumentStatus, rating int32) bool

// ByStatus returns a Predicate that keeps documents whose status equals s.
func ByStatus(s index.DocumentStatus) Predicate {
	return func(_ int32, status index.DocumentStatus, _ int32) bool {
		return status == s
	}
}

// DefaultPredicate keeps documents with status Actual.
func DefaultPredicate() Predicate {
	return ByStatus(index.Actual)
}

// Less reports whether a should sort before b: strictly descending by
// relevance, ties (within relevanceEpsilon) broken by descending rating.
func Less(a, b Document) bool {
	if math.Abs(a.Relevance-b.Relevance) < relevanceEpsilon {
		return a.Rating > b.Rating
	}
	return a.Relevance > b.Relevance
}

func idf(totalDocs int, docFreq int) float64 {
	return math.Log(float64(totalDocs) / float64(docFreq))
}

// Score computes TF-IDF relevance for every candidate document matching
// q.Plus, filters by predicate, prunes any document containing a q.Minus
// word, and returns the (unsorted, untruncated) result set. Sort and
// TopK are applied by the caller (Engine.FindTop et al.), matching the
// original search_server.h's FindAllDocuments + FindTopDocuments split.
func Score(idx *index.Index, q query.Query, predicate Predicate) []Document {
	totalDocs := idx.DocCount()
	relevance := make(map[int32]float64)

	for word := range q.Plus {
		postings := idx.PostingsFor(word)
		if len(postings) == 0 {
			continue
		}
		weight := idf(totalDocs, len(postings))
		for docID, tf := range postings {
			meta, ok := idx.Meta(docID)
			if !ok || !predicate(docID, meta.Status, meta.Rating) {
				continue
			}
			relevance[docID] += tf * weight
		}
	}

	for word := range q.Minus {
		for docID := range idx.PostingsFor(word) {
			delete(relevance, docID)
		}
	}

	return toDocuments(idx, relevance)
}

// ScoreParallel computes the same result as Score, but fans each plus
// word out to its own goroutine, accumulating into a sharded
// concurrentmap.Map so independent words never contend on a single lock.
// Minus pruning runs sequentially afterward, directly against the shards,
// the same ordering the spec requires for the parallel variant.
func ScoreParallel(idx *index.Index, q query.Query, predicate Predicate, shards int) []Document {
	totalDocs := idx.DocCount()
	acc := concurrentmap.New[int32, float64](shards)

	words := make([]string, 0, len(q.Plus))
	for w := range q.Plus {
		if len(idx.PostingsFor(w)) > 0 {
			words = append(words, w)
		}
	}

	g := new(errgroup.Group)
	for _, word := range words {
		word := word
		g.Go(func() error {
			postings := idx.PostingsFor(word)
			weight := idf(totalDocs, len(postings))
			for docID, tf := range postings {
				meta, ok := idx.Meta(docID)
				if !ok || !predicate(docID, meta.Status, meta.Rating) {
					continue
				}
				h := acc.Access(docID)
				h.Set(h.Get() + tf*weight)
				h.Release()
			}
			return nil
		})
	}
	_ = g.Wait() // no Score goroutine ever returns an error

	for word := range q.Minus {
		for docID := range idx.PostingsFor(word) {
			acc.Erase(docID)
		}
	}

	relevance := acc.Snapshot()
	return toDocuments(idx, relevance)
}

func toDocuments(idx *index.Index, relevance map[int32]float64) []Document {
	docs := make([]Document, 0, len(relevance))
	for docID, score := range relevance {
		meta, ok := idx.Meta(docID)
		if !ok {
			continue
		}
		docs = append(docs, Document{ID: docID, Relevance: score, Rating: meta.Rating})
	}
	return docs
}

// Sort orders docs per Less, in place, and returns it for chaining.
func Sort(docs []Document) []Document {
	sort.Slice(docs, func(i, j int) bool { return Less(docs[i], docs[j]) })
	return docs
}

// TopK truncates docs to the first k entries (docs must already be
// sorted). k <= 0 returns docs unchanged.
func TopK(docs []Document, k int) []Document {
	if k > 0 && len(docs) > k {
		docs = docs[:k]
	}
	return docs
}
