package cache

import (
	"testing"

	"github.com/cognicore/sdc/pkg/sdc/config"
	"github.com/cognicore/sdc/pkg/sdc/corpus"
)

func buildStub(name string) (corpus.Searcher, error) {
	cfg := config.DefaultMatchConfig()
	c := corpus.FromText(name, "hello world", cfg)
	return corpus.Build(c)
}

func TestGetBuildsAndCaches(t *testing.T) {
	calls := 0
	loader := func(name string) (corpus.Searcher, error) {
		calls++
		return buildStub(name)
	}

	r, err := New(2, loader)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := r.Get("a"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := r.Get("a"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if calls != 1 {
		t.Errorf("loader called %d times, want 1 (second Get should hit cache)", calls)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestInvalidateForcesRebuild(t *testing.T) {
	calls := 0
	loader := func(name string) (corpus.Searcher, error) {
		calls++
		return buildStub(name)
	}

	r, err := New(2, loader)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := r.Get("a"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	r.Invalidate("a")
	if _, err := r.Get("a"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if calls != 2 {
		t.Errorf("loader called %d times, want 2 after invalidation", calls)
	}
}

func TestEvictsLeastRecentlyUsedBeyondCapacity(t *testing.T) {
	loader := func(name string) (corpus.Searcher, error) {
		return buildStub(name)
	}

	r, err := New(1, loader)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := r.Get("a"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := r.Get("b"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after eviction", r.Len())
	}
}
