// Package requestqueue tracks the result-count of the last N find-top
// calls in a rolling window, so a caller can ask how many recent queries
// returned nothing. Grounded on request_queue.h/.cpp's deque-backed
// sec_in_day_ window.
package requestqueue

import (
	"github.com/avoronin/searchengine/internal/engine"
	"github.com/avoronin/searchengine/internal/engine/index"
	"github.com/avoronin/searchengine/internal/engine/rank"
)

// defaultWindow matches request_queue.h's sec_in_day_: one query per
// simulated minute, rolled over a day (1440 minutes).
const defaultWindow = 1440

// RequestQueue wraps an Engine and remembers the result-count of the last
// window find-top calls.
type RequestQueue struct {
	engine *engine.Engine
	window int
	counts []int
}

// New wraps e with a rolling window of the given size. A non-positive
// size falls back to defaultWindow.
func New(e *engine.Engine, window int) *RequestQueue {
	if window <= 0 {
		window = defaultWindow
	}
	return &RequestQueue{engine: e, window: window}
}

func (q *RequestQueue) record(n int) {
	q.counts = append(q.counts, n)
	if len(q.counts) > q.window {
		q.counts = q.counts[1:]
	}
}

// AddFindRequest runs FindTop with the default predicate (status ==
// Actual), records the result count, and returns the results.
func (q *RequestQueue) AddFindRequest(rawQuery string) ([]rank.Document, error) {
	docs, err := q.engine.FindTop(rawQuery)
	if err != nil {
		return nil, err
	}
	q.record(len(docs))
	return docs, nil
}

// AddFindRequestByStatus is AddFindRequest restricted to the given status.
func (q *RequestQueue) AddFindRequestByStatus(rawQuery string, status index.DocumentStatus) ([]rank.Document, error) {
	docs, err := q.engine.FindTopByStatus(rawQuery, status)
	if err != nil {
		return nil, err
	}
	q.record(len(docs))
	return docs, nil
}

// NoResultRequests returns how many of the requests currently in the
// window returned zero documents.
func (q *RequestQueue) NoResultRequests() int {
	n := 0
	for _, c := range q.counts {
		if c == 0 {
			n++
		}
	}
	return n
}
