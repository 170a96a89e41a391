package requestqueue

import (
	"testing"

	"github.com/avoronin/searchengine/internal/engine"
	"github.com/avoronin/searchengine/internal/engine/index"
)

func TestNoResultRequests(t *testing.T) {
	e, err := engine.New("")
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	if err := e.Add(1, "cat", index.Actual, nil); err != nil {
		t.Fatalf("Add: %v", err)
	}

	rq := New(e, 3)
	mustFind := func(q string) {
		t.Helper()
		if _, err := rq.AddFindRequest(q); err != nil {
			t.Fatalf("AddFindRequest(%q): %v", q, err)
		}
	}

	mustFind("cat")   // 1 result
	mustFind("dog")   // 0 results
	mustFind("bird")  // 0 results

	if got := rq.NoResultRequests(); got != 2 {
		t.Errorf("NoResultRequests() = %d, want 2", got)
	}
}

func TestNoResultRequests_RollingWindow(t *testing.T) {
	e, err := engine.New("")
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	if err := e.Add(1, "cat", index.Actual, nil); err != nil {
		t.Fatalf("Add: %v", err)
	}

	rq := New(e, 2)
	for _, q := range []string{"dog", "dog", "cat"} {
		if _, err := rq.AddFindRequest(q); err != nil {
			t.Fatalf("AddFindRequest(%q): %v", q, err)
		}
	}

	// window size 2: only the last two requests ("dog", "cat") remain,
	// the earliest "dog" (no result) has rolled off.
	if got := rq.NoResultRequests(); got != 1 {
		t.Errorf("NoResultRequests() = %d, want 1", got)
	}
}

func TestNew_DefaultsWindowWhenNonPositive(t *testing.T) {
	e, err := engine.New("")
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	rq := New(e, 0)
	if rq.window != defaultWindow {
		t.Errorf("window = %d, want %d", rq.window, defaultWindow)
	}
}
