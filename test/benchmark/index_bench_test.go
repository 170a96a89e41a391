// Package benchmark contains Go benchmarks for the inverted index, the
// TF-IDF scorer, and the batch query executor, measuring throughput and
// allocation behaviour.
package benchmark

import (
	"fmt"
	"testing"

	"github.com/avoronin/searchengine/internal/engine"
	"github.com/avoronin/searchengine/internal/engine/batch"
	"github.com/avoronin/searchengine/internal/engine/index"
	"github.com/avoronin/searchengine/internal/engine/query"
	"github.com/avoronin/searchengine/internal/engine/rank"
)

var benchTerms = []string{"distributed", "search", "analytics", "platform", "indexing", "query", "engine", "ranking"}

func benchBody(i int) string {
	return fmt.Sprintf("this document covers %s %s %s in production systems",
		benchTerms[i%len(benchTerms)], benchTerms[(i+2)%len(benchTerms)], benchTerms[(i+3)%len(benchTerms)])
}

// BenchmarkIndexAdd measures per-document insert throughput into the
// inverted index.
func BenchmarkIndexAdd(b *testing.B) {
	idx := index.New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		words, _ := index.SplitStopped(benchBody(i), func(string) bool { return false })
		idx.Add(int32(i), words, index.Actual, int32(i%5))
	}
}

// BenchmarkIndexRemove measures per-document removal throughput,
// sequential and parallel.
func BenchmarkIndexRemove(b *testing.B) {
	for _, variant := range []string{"sequential", "parallel"} {
		b.Run(variant, func(b *testing.B) {
			idx := index.New()
			for i := 0; i < b.N; i++ {
				words, _ := index.SplitStopped(benchBody(i), func(string) bool { return false })
				idx.Add(int32(i), words, index.Actual, 0)
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if variant == "parallel" {
					idx.RemoveParallel(int32(i))
				} else {
					idx.Remove(int32(i))
				}
			}
		})
	}
}

// BenchmarkScore measures TF-IDF scoring latency over increasing corpus
// sizes, sequential and parallel.
func BenchmarkScore(b *testing.B) {
	sizes := []int{100, 1000, 10000}
	for _, n := range sizes {
		idx := index.New()
		for i := 0; i < n; i++ {
			words, _ := index.SplitStopped(benchBody(i), func(string) bool { return false })
			idx.Add(int32(i), words, index.Actual, int32(i%5))
		}
		q, err := query.Parse("distributed search ranking", false, nil)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("sequential_docs_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				docs := rank.Score(idx, q, rank.DefaultPredicate())
				_ = docs
			}
		})
		b.Run(fmt.Sprintf("parallel_docs_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				docs := rank.ScoreParallel(idx, q, rank.DefaultPredicate(), 8)
				_ = docs
			}
		})
	}
}

// BenchmarkProcessQueries measures batch query throughput as the batch
// size grows.
func BenchmarkProcessQueries(b *testing.B) {
	e, err := engine.New("")
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 5000; i++ {
		if err := e.Add(int32(i), benchBody(i), index.Actual, []int32{int32(i % 5)}); err != nil {
			b.Fatal(err)
		}
	}

	batchSizes := []int{1, 10, 100}
	for _, n := range batchSizes {
		queries := make([]string, n)
		for i := range queries {
			queries[i] = benchTerms[i%len(benchTerms)]
		}
		b.Run(fmt.Sprintf("queries_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				results := batch.ProcessQueries(e, queries)
				_ = results
			}
		})
	}
}
