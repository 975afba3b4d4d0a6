// Package memstore is an in-memory implementation of store.Store, for
// tests and small deployments that don't need SQLite.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/sdc/pkg/sdc/sdcerr"
	"github.com/cognicore/sdc/pkg/sdc/store"
)

// Store is an in-memory store.Store backed by a mutex-guarded map.
type Store struct {
	mu   sync.RWMutex
	defs map[string]store.Definition
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{defs: make(map[string]store.Definition)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// Save inserts or replaces the definition named def.Name.
func (s *Store) Save(ctx context.Context, def store.Definition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defs[def.Name] = copyDefinition(def)
	return nil
}

// Load returns the definition named name, if present.
func (s *Store) Load(ctx context.Context, name string) (store.Definition, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.defs[name]
	if !ok {
		return store.Definition{}, false, nil
	}
	return copyDefinition(def), true, nil
}

// List returns all stored corpus names, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.defs))
	for name := range s.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the definition named name.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.defs[name]; !ok {
		return sdcerr.ErrNotFound
	}
	delete(s.defs, name)
	return nil
}

func copyDefinition(d store.Definition) store.Definition {
	tokens := make([]string, len(d.Tokens))
	copy(tokens, d.Tokens)
	strip := make([]bool, len(d.Strip))
	copy(strip, d.Strip)

	return store.Definition{
		Name:    d.Name,
		Tokens:  tokens,
		Strip:   strip,
		Config:  d.Config,
		BuiltAt: d.BuiltAt,
	}
}
