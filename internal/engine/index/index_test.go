package index

import (
	"math"
	"testing"
)

func TestAdd_TermFrequencySumsToOne(t *testing.T) {
	idx := New()
	idx.Add(1, []string{"cat", "dog", "cat"}, Actual, 0)

	freqs := idx.WordFrequencies(1)
	var sum float64
	for _, f := range freqs {
		sum += f
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("sum of term frequencies = %v, want ~1.0", sum)
	}
	if math.Abs(freqs["cat"]-2.0/3.0) > 1e-9 {
		t.Errorf("freqs[cat] = %v, want 2/3", freqs["cat"])
	}
}

func TestAdd_EmptyWordsYieldsEmptyMap(t *testing.T) {
	idx := New()
	idx.Add(1, nil, Actual, 0)
	if got := idx.WordFrequencies(1); len(got) != 0 {
		t.Errorf("WordFrequencies() = %v, want empty", got)
	}
	if !idx.Exists(1) {
		t.Error("document should still exist with no surviving words")
	}
}

func TestForwardReverseConsistency(t *testing.T) {
	idx := New()
	idx.Add(1, []string{"cat", "dog"}, Actual, 0)
	idx.Add(2, []string{"cat"}, Actual, 0)

	for word, docFreqs := range map[string]map[int32]float64{
		"cat": idx.PostingsFor("cat"),
		"dog": idx.PostingsFor("dog"),
	} {
		for doc, freq := range docFreqs {
			if idx.WordFrequencies(doc)[word] != freq {
				t.Errorf("forward[%s][%d] = %v, reverse disagrees", word, doc, freq)
			}
		}
	}
}

func TestRemove_PrunesEmptyForwardEntry(t *testing.T) {
	idx := New()
	idx.Add(1, []string{"unique"}, Actual, 0)
	idx.Remove(1)

	if idx.Exists(1) {
		t.Error("document should no longer exist")
	}
	if idx.DocumentFrequency("unique") != 0 {
		t.Error("word entry should be pruned once no documents contain it")
	}
	if idx.PostingsFor("unique") != nil {
		t.Error("PostingsFor should report no entry, not an empty map, after pruning")
	}
}

func TestRemove_Idempotent(t *testing.T) {
	idx := New()
	idx.Add(1, []string{"cat"}, Actual, 0)
	idx.Remove(1)
	idx.Remove(1) // no-op, must not panic
	if idx.Exists(1) {
		t.Error("document should not exist")
	}
}

func TestRemoveParallel_MatchesSequentialRemove(t *testing.T) {
	words := make([]string, 50)
	for i := range words {
		words[i] = string(rune('a' + i%26))
	}

	idx := New()
	idx.Add(1, words, Actual, 0)
	idx.RemoveParallel(1)

	if idx.Exists(1) {
		t.Error("document should no longer exist")
	}
	for _, w := range words {
		if df := idx.DocumentFrequency(w); df != 0 {
			t.Errorf("DocumentFrequency(%q) = %d, want 0", w, df)
		}
	}
}

func TestDocCountAndIDsAscending(t *testing.T) {
	idx := New()
	idx.Add(3, []string{"a"}, Actual, 0)
	idx.Add(1, []string{"b"}, Actual, 0)
	idx.Add(2, []string{"c"}, Actual, 0)

	if idx.DocCount() != 3 {
		t.Errorf("DocCount() = %d, want 3", idx.DocCount())
	}
	ids := idx.IDs()
	want := []int32{1, 2, 3}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs() = %v, want %v", ids, want)
		}
	}
}

func TestSplitStopped(t *testing.T) {
	isStop := func(w string) bool { return w == "with" }
	words, ok := SplitStopped("cat with dog", isStop)
	if !ok {
		t.Fatal("expected all words valid")
	}
	want := []string{"cat", "dog"}
	if len(words) != len(want) || words[0] != want[0] || words[1] != want[1] {
		t.Errorf("SplitStopped() = %v, want %v", words, want)
	}

	if _, ok := SplitStopped("cat \x12", isStop); ok {
		t.Error("expected a control byte to invalidate the body")
	}
}
