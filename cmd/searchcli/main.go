// Command searchcli is a read-eval-print loop over the in-memory search
// engine: it reads commands from stdin, one per line, and writes results
// to stdout, catching the engine's InvalidArgument errors the way
// search_server.cpp's free-function AddDocument/FindTopDocuments/
// MatchDocuments wrappers catch invalid_argument and print a diagnostic
// instead of propagating.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/avoronin/searchengine/internal/engine"
	"github.com/avoronin/searchengine/internal/engine/dedupe"
	"github.com/avoronin/searchengine/internal/engine/index"
	"github.com/avoronin/searchengine/internal/render"
	"github.com/avoronin/searchengine/internal/requestqueue"
	"github.com/avoronin/searchengine/pkg/config"
	"github.com/avoronin/searchengine/pkg/logger"
	"github.com/avoronin/searchengine/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("starting search engine", "stop_words", len(cfg.Engine.StopWords), "shards", cfg.Engine.ConcurrentMapShards)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		shutdown := metrics.StartServer(cfg.Metrics.Addr, m)
		defer func() { _ = shutdown(context.Background()) }()
	} else {
		m = metrics.NewNoop()
	}

	eng, err := engine.NewFromSlice(cfg.Engine.StopWords,
		engine.WithMetrics(m),
		engine.WithConcurrentMapShards(cfg.Engine.ConcurrentMapShards),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build engine: %v\n", err)
		os.Exit(1)
	}
	rq := requestqueue.New(eng, cfg.Engine.RequestQueueWindow)

	runREPL(eng, rq, os.Stdin, os.Stdout)
}

func runREPL(eng *engine.Engine, rq *requestqueue.RequestQueue, in *os.File, out *os.File) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		cmd := strings.ToUpper(fields[0])
		var rest string
		if len(fields) > 1 {
			rest = fields[1]
		}

		switch cmd {
		case "ADD":
			handleAdd(eng, rest, out)
		case "FIND":
			handleFind(rq, rest, out)
		case "MATCH":
			handleMatch(eng, rest, out)
		case "REMOVE":
			handleRemove(eng, rest, out)
		case "DEDUPE":
			dedupe.RemoveDuplicates(eng, nil)
		case "STATS":
			fmt.Fprintf(out, "{ documents = %d, no_result_requests = %d }\n", eng.DocumentCount(), rq.NoResultRequests())
		default:
			fmt.Fprintf(out, "unknown command %q\n", cmd)
		}
	}
}

// handleAdd parses "<id> <status> <rating,rating,...> <body...>".
func handleAdd(eng *engine.Engine, rest string, out *os.File) {
	fields := strings.SplitN(rest, " ", 4)
	if len(fields) < 4 {
		fmt.Fprintf(out, "ADD requires: <id> <status> <ratings> <body>\n")
		return
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		fmt.Fprintf(out, "invalid document id %q: %v\n", fields[0], err)
		return
	}
	status, err := parseStatus(fields[1])
	if err != nil {
		fmt.Fprintf(out, "invalid status %q: %v\n", fields[1], err)
		return
	}
	ratings, err := parseRatings(fields[2])
	if err != nil {
		fmt.Fprintf(out, "invalid ratings %q: %v\n", fields[2], err)
		return
	}

	if err := eng.Add(int32(id), fields[3], status, ratings); err != nil {
		fmt.Fprintf(out, "error adding document %d: %v\n", id, err)
	}
}

func handleFind(rq *requestqueue.RequestQueue, rawQuery string, out *os.File) {
	fmt.Fprintf(out, "search results for: %s\n", rawQuery)
	docs, err := rq.AddFindRequest(rawQuery)
	if err != nil {
		fmt.Fprintf(out, "error searching: %v\n", err)
		return
	}
	render.Documents(out, docs)
}

func handleMatch(eng *engine.Engine, rest string, out *os.File) {
	fields := strings.SplitN(rest, " ", 2)
	if len(fields) < 2 {
		fmt.Fprintf(out, "MATCH requires: <id> <query>\n")
		return
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		fmt.Fprintf(out, "invalid document id %q: %v\n", fields[0], err)
		return
	}
	words, status, err := eng.Match(fields[1], int32(id))
	if err != nil {
		fmt.Fprintf(out, "error matching document %d against %q: %v\n", id, fields[1], err)
		return
	}
	render.MatchResult(out, int32(id), words, status)
}

func handleRemove(eng *engine.Engine, rest string, out *os.File) {
	id, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		fmt.Fprintf(out, "invalid document id %q: %v\n", rest, err)
		return
	}
	eng.Remove(int32(id))
}

func parseStatus(s string) (index.DocumentStatus, error) {
	switch strings.ToUpper(s) {
	case "ACTUAL":
		return index.Actual, nil
	case "IRRELEVANT":
		return index.Irrelevant, nil
	case "BANNED":
		return index.Banned, nil
	case "REMOVED":
		return index.Removed, nil
	default:
		return 0, fmt.Errorf("unknown status %q", s)
	}
}

func parseRatings(s string) ([]int32, error) {
	if s == "-" || s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int32, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out = append(out, int32(n))
	}
	return out, nil
}
