// Package cache keeps a bounded number of built corpus searchers live
// in memory, evicting the least recently used one once a registry
// fills up. Building a matcher means replaying every token through
// EmplaceBack, which is cheap for a short query but wasteful to redo
// on every request against the same corpus, so this sits in front of
// pkg/sdc/corpus.Build the way a lookaside cache sits in front of any
// expensive reconstructible value.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/cognicore/sdc/pkg/sdc/corpus"
)

// Loader builds a Searcher for a named corpus on a cache miss.
type Loader func(name string) (corpus.Searcher, error)

// Registry is an LRU cache of corpus.Searcher, keyed by corpus name.
type Registry struct {
	cache *lru.Cache[string, corpus.Searcher]
	load  Loader
}

// New creates a Registry holding at most capacity live searchers,
// building missing ones with load.
func New(capacity int, load Loader) (*Registry, error) {
	c, err := lru.New[string, corpus.Searcher](capacity)
	if err != nil {
		return nil, err
	}
	return &Registry{cache: c, load: load}, nil
}

// Get returns the searcher for name, building and caching it on a
// miss via the Registry's Loader.
func (r *Registry) Get(name string) (corpus.Searcher, error) {
	if s, ok := r.cache.Get(name); ok {
		return s, nil
	}

	s, err := r.load(name)
	if err != nil {
		return nil, err
	}
	r.cache.Add(name, s)
	return s, nil
}

// Invalidate evicts name from the registry, forcing the next Get to
// rebuild it. Callers use this after a corpus definition changes.
func (r *Registry) Invalidate(name string) {
	r.cache.Remove(name)
}

// Len reports how many searchers are currently cached.
func (r *Registry) Len() int {
	return r.cache.Len()
}
