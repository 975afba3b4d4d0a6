// Package store defines the persistence interface for named corpus
// definitions, mirroring the storage-backend split (an interface, an
// in-memory implementation for tests, a SQLite implementation for
// production) used throughout the teacher repo's store layer.
package store

import (
	"context"
	"time"

	"github.com/cognicore/sdc/pkg/sdc/config"
)

// Store persists and retrieves named corpus definitions. It never
// stores a matcher's live memoised matrix — only what is needed to
// rebuild one: the token sequence, strip flags, and match config.
type Store interface {
	Close() error

	Save(ctx context.Context, def Definition) error
	Load(ctx context.Context, name string) (Definition, bool, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
}

// Definition is the persisted shape of a pkg/sdc/corpus.Corpus.
type Definition struct {
	Name    string
	Tokens  []string
	Strip   []bool
	Config  config.MatchConfig
	BuiltAt time.Time
}
