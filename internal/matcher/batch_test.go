package matcher

import (
	"context"
	"testing"
)

func TestMatchBatch(t *testing.T) {
	e := NewDefaultEngine()

	queries := []string{"Ali", "Aysha", "no such person zzz", "Bill Smith"}
	results, err := e.MatchBatch(context.Background(), directory, queries, 4)
	if err != nil {
		t.Fatalf("MatchBatch: %v", err)
	}
	if len(results) != len(queries) {
		t.Fatalf("got %d results for %d queries", len(results), len(queries))
	}

	want := []string{"Ali Al-Mansour", "Dr. Ayesha Khan", "", "William Smyth"}
	for i, r := range results {
		if want[i] == "" {
			if r.Index != -1 {
				t.Errorf("query %q resolved to %q, want no match", queries[i], r.Candidate)
			}
			continue
		}
		if r.Candidate != want[i] {
			t.Errorf("query %q resolved to %q, want %q", queries[i], r.Candidate, want[i])
		}
		if directory[r.Index] != r.Candidate {
			t.Errorf("query %q index %d does not point at %q", queries[i], r.Index, r.Candidate)
		}
	}
}

func TestMatchBatchCancelled(t *testing.T) {
	e := NewDefaultEngine()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.MatchBatch(ctx, directory, []string{"Ali"}, 1); err == nil {
		t.Error("MatchBatch with cancelled context returned nil error")
	}
}

func TestSearchBatch(t *testing.T) {
	e := NewDefaultEngine()

	got, err := e.SearchBatch(context.Background(), directory, []string{"Ali", "zzz qqq"}, 0)
	if err != nil {
		t.Fatalf("SearchBatch: %v", err)
	}
	if got[0] != "Ali Al-Mansour" || got[1] != "" {
		t.Errorf("SearchBatch = %v, want [Ali Al-Mansour, empty]", got)
	}
}
