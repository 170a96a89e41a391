// Package engine is the search engine facade: it wires the tokenizer,
// stop-word set, inverted index, query parser, and scorer into the
// operations clients call (Add, FindTop, Match, Remove, ...), and reports
// every mutating/query call to the ambient logging and metrics stack.
package engine

import (
	"log/slog"
	"sort"
	"time"

	"github.com/avoronin/searchengine/internal/engine/index"
	"github.com/avoronin/searchengine/internal/engine/query"
	"github.com/avoronin/searchengine/internal/engine/rank"
	"github.com/avoronin/searchengine/internal/engine/stopwords"
	apperrors "github.com/avoronin/searchengine/pkg/errors"
	"github.com/avoronin/searchengine/pkg/metrics"
)

// defaultConcurrentMapShards is the bucket count ScoreParallel uses when
// the caller does not configure one. Any value >= 1 is correct.
const defaultConcurrentMapShards = 4

// Engine is the in-memory search engine over a live document set.
type Engine struct {
	idx    *index.Index
	stop   *stopwords.Set
	shards int
	logger *slog.Logger
	metric *metrics.Metrics
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithMetrics attaches a metrics sink. Without this option the engine
// records nothing (safe; every metrics.Metrics method call is skipped).
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metric = m }
}

// WithConcurrentMapShards sets the bucket count for ScoreParallel's
// sharded accumulator.
func WithConcurrentMapShards(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.shards = n
		}
	}
}

// WithLogger overrides the default component logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New builds an Engine whose stop-word set is parsed from a raw,
// space-separated string.
func New(stopWords string, opts ...Option) (*Engine, error) {
	set, err := stopwords.New(stopWords)
	if err != nil {
		return nil, err
	}
	return newEngine(set, opts...), nil
}

// NewFromSlice builds an Engine whose stop-word set is validated directly
// from a slice of words.
func NewFromSlice(stopWords []string, opts ...Option) (*Engine, error) {
	set, err := stopwords.NewFromSlice(stopWords)
	if err != nil {
		return nil, err
	}
	return newEngine(set, opts...), nil
}

func newEngine(stop *stopwords.Set, opts ...Option) *Engine {
	e := &Engine{
		idx:    index.New(),
		stop:   stop,
		shards: defaultConcurrentMapShards,
		logger: slog.Default().With("component", "engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StopWords returns the engine's stop words, space-joined, ascending.
func (e *Engine) StopWords() string {
	return e.stop.String()
}

// DocumentCount returns the number of live documents.
func (e *Engine) DocumentCount() int32 {
	return int32(e.idx.DocCount())
}

// IterateIDs returns the live document ids, ascending.
func (e *Engine) IterateIDs() []int32 {
	return e.idx.IDs()
}

// WordFrequencies returns document id's reverse word-frequency map, or an
// empty map if id does not exist.
func (e *Engine) WordFrequencies(id int32) map[string]float64 {
	return e.idx.WordFrequencies(id)
}

// DocumentID returns the id at the given position in ascending id order
// (the legacy positional accessor). Fails with OutOfRange if index is
// negative or past the end of the live id-set.
func (e *Engine) DocumentID(position int) (int32, error) {
	ids := e.idx.IDs()
	if position < 0 || position >= len(ids) {
		return 0, apperrors.OutOfRange("position %d is out of range for %d documents", position, len(ids))
	}
	return ids[position], nil
}

// Add inserts a new document. Fails with InvalidArgument if id is
// negative, if id already exists, or if body contains an invalid word.
// Stop-words are dropped before term frequencies are computed; ratings is
// averaged per §7's overflow-safe rule (sum in a 64-bit accumulator,
// quotient truncated toward zero, 0 for an empty list).
func (e *Engine) Add(id int32, body string, status index.DocumentStatus, ratings []int32) error {
	if id < 0 {
		return apperrors.InvalidArgument("document id %d must be non-negative", id)
	}
	if e.idx.Exists(id) {
		return apperrors.InvalidArgument("document id %d already exists", id)
	}
	words, ok := index.SplitStopped(body, e.stop.Contains)
	if !ok {
		return apperrors.InvalidArgument("document %d body contains an invalid word", id)
	}

	rating := averageRating(ratings)
	e.idx.Add(id, words, status, rating)

	e.logger.Debug("document added", "id", id, "words", len(words), "status", status, "rating", rating)
	if e.metric != nil {
		e.metric.DocumentsAdded.Inc()
	}
	return nil
}

// averageRating sums ratings in a 64-bit accumulator (so a long slice of
// near-int32-extreme values cannot overflow mid-sum) and truncates the
// quotient toward zero, Go's native int64 division behavior.
func averageRating(ratings []int32) int32 {
	if len(ratings) == 0 {
		return 0
	}
	var sum int64
	for _, r := range ratings {
		sum += int64(r)
	}
	return int32(sum / int64(len(ratings)))
}

// FindTop parses rawQuery and returns up to rank.MaxResultDocumentCount
// documents matching the default predicate (status == Actual), ranked per
// §4.5. Fails with InvalidArgument on malformed query syntax.
func (e *Engine) FindTop(rawQuery string) ([]rank.Document, error) {
	return e.findTop(rawQuery, rank.DefaultPredicate(), false)
}

// FindTopByStatus is FindTop restricted to documents with the given status.
func (e *Engine) FindTopByStatus(rawQuery string, status index.DocumentStatus) ([]rank.Document, error) {
	return e.findTop(rawQuery, rank.ByStatus(status), false)
}

// FindTopWithPredicate is FindTop with an arbitrary caller-supplied predicate.
func (e *Engine) FindTopWithPredicate(rawQuery string, predicate rank.Predicate) ([]rank.Document, error) {
	return e.findTop(rawQuery, predicate, false)
}

// FindTopParallel is FindTop computed via rank.ScoreParallel.
func (e *Engine) FindTopParallel(rawQuery string) ([]rank.Document, error) {
	return e.findTop(rawQuery, rank.DefaultPredicate(), true)
}

func (e *Engine) findTop(rawQuery string, predicate rank.Predicate, parallel bool) ([]rank.Document, error) {
	start := time.Now()
	q, err := query.Parse(rawQuery, false, e.stop)
	if err != nil {
		return nil, err
	}

	var docs []rank.Document
	if parallel {
		docs = rank.ScoreParallel(e.idx, q, predicate, e.shards)
	} else {
		docs = rank.Score(e.idx, q, predicate)
	}
	docs = rank.TopK(rank.Sort(docs), rank.MaxResultDocumentCount)

	if e.metric != nil {
		e.metric.QueriesExecuted.Inc()
		e.metric.QueryDuration.Observe(time.Since(start).Seconds())
	}
	e.logger.Debug("query executed", "query", rawQuery, "parallel", parallel, "results", len(docs))
	return docs, nil
}

// Match parses rawQuery with stop-words retained and reports which
// plus-words occur in document id, and its status. If any minus-word in
// the query is present in the document, it returns an empty word list
// instead. Fails with InvalidArgument on malformed query syntax; a
// missing id returns (nil, zero status, nil) — not an error.
func (e *Engine) Match(rawQuery string, id int32) ([]string, index.DocumentStatus, error) {
	q, err := query.Parse(rawQuery, true, e.stop)
	if err != nil {
		return nil, 0, err
	}

	meta, ok := e.idx.Meta(id)
	if !ok {
		return nil, 0, nil
	}
	freqs := e.idx.WordFrequencies(id)

	for w := range q.Minus {
		if _, present := freqs[w]; present {
			if e.metric != nil {
				e.metric.QueriesExecuted.Inc()
			}
			return nil, meta.Status, nil
		}
	}

	matched := make([]string, 0, len(q.Plus))
	for w := range q.Plus {
		if _, present := freqs[w]; present {
			matched = append(matched, w)
		}
	}
	sort.Strings(matched)

	if e.metric != nil {
		e.metric.QueriesExecuted.Inc()
	}
	return matched, meta.Status, nil
}

// Remove erases document id, a no-op if absent.
func (e *Engine) Remove(id int32) {
	if !e.idx.Exists(id) {
		return
	}
	e.idx.Remove(id)
	e.logger.Debug("document removed", "id", id)
	if e.metric != nil {
		e.metric.DocumentsRemoved.Inc()
	}
}

// RemoveParallel is Remove with the per-word forward-index erasures
// parallelized across goroutines (see index.Index.RemoveParallel).
func (e *Engine) RemoveParallel(id int32) {
	if !e.idx.Exists(id) {
		return
	}
	e.idx.RemoveParallel(id)
	e.logger.Debug("document removed (parallel)", "id", id)
	if e.metric != nil {
		e.metric.DocumentsRemoved.Inc()
	}
}

// Index exposes the underlying inverted index for packages (dedupe,
// batch, requestqueue) that need read access beyond this facade's surface.
func (e *Engine) Index() *index.Index {
	return e.idx
}

// Logger returns the engine's component logger, for collaborators
// (dedupe.RemoveDuplicates) that log through the same sink.
func (e *Engine) Logger() *slog.Logger {
	return e.logger
}

// Metrics returns the engine's metrics sink, or nil if none was configured.
func (e *Engine) Metrics() *metrics.Metrics {
	return e.metric
}
