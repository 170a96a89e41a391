// Package batch fans a batch of queries out across goroutines, preserving
// input order in the result, mirroring process_queries.cpp's
// std::transform(execution::par, ...) over the sequential FindTop.
package batch

import (
	"golang.org/x/sync/errgroup"

	"github.com/avoronin/searchengine/internal/engine"
	"github.com/avoronin/searchengine/internal/engine/rank"
)

// ProcessQueries runs every query in queries concurrently and returns one
// result slice per query, in input order. A query that fails to parse
// (InvalidArgument) contributes an empty result at its position rather
// than aborting the batch — callers wanting the error should call
// Engine.FindTop directly for that query.
func ProcessQueries(e *engine.Engine, queries []string) [][]rank.Document {
	results := make([][]rank.Document, len(queries))

	var g errgroup.Group
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			docs, err := e.FindTop(q)
			if err != nil {
				results[i] = nil
				return nil
			}
			results[i] = docs
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// ProcessQueriesJoined concatenates ProcessQueries' results, preserving
// both query order and each query's intra-result ranking order.
func ProcessQueriesJoined(e *engine.Engine, queries []string) []rank.Document {
	perQuery := ProcessQueries(e, queries)

	total := 0
	for _, docs := range perQuery {
		total += len(docs)
	}
	out := make([]rank.Document, 0, total)
	for _, docs := range perQuery {
		out = append(out, docs...)
	}
	return out
}
