package dedupe

import (
	"testing"

	"github.com/avoronin/searchengine/internal/engine"
	"github.com/avoronin/searchengine/internal/engine/index"
)

// "and"/"with" are stop words so the surviving word sets collapse the way
// this corpus is designed to exercise.
func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.New("and with")
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return e
}

func TestFindDuplicateIds(t *testing.T) {
	e := newTestEngine(t)

	docs := []struct {
		id   int32
		body string
	}{
		{1, "funny pet and nasty rat"},
		{2, "funny pet with curly hair"},
		{3, "funny pet and curly hair"},       // duplicate of 2
		{4, "funny pet and curly hair"},       // duplicate of 2
		{5, "funny funny pet and nasty rat"},  // duplicate of 1 (same word set)
		{6, "nasty rat with curly hair"},
		{7, "nasty rat with curly hair"}, // duplicate of 6
	}
	for _, d := range docs {
		if err := e.Add(d.id, d.body, index.Actual, nil); err != nil {
			t.Fatalf("Add(%d): %v", d.id, err)
		}
	}

	got := FindDuplicateIds(e)
	want := []int32{3, 4, 5, 7}
	if len(got) != len(want) {
		t.Fatalf("FindDuplicateIds() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FindDuplicateIds()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRemoveDuplicates(t *testing.T) {
	e := newTestEngine(t)
	if err := e.Add(1, "cat dog", index.Actual, nil); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := e.Add(2, "cat dog", index.Actual, nil); err != nil {
		t.Fatalf("Add: %v", err)
	}

	RemoveDuplicates(e, nil)

	if e.DocumentCount() != 1 {
		t.Errorf("DocumentCount() = %d, want 1", e.DocumentCount())
	}
	ids := e.IterateIDs()
	if len(ids) != 1 || ids[0] != 1 {
		t.Errorf("surviving ids = %v, want [1] (the earlier document)", ids)
	}
}
