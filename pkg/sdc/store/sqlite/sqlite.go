// Package sqlite implements store.Store on top of modernc.org/sqlite,
// the teacher repo's pure-Go SQLite driver, in the same open-enable
// WAL-schema-then-serve shape as its own SQLite store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/sdc/pkg/sdc/config"
	"github.com/cognicore/sdc/pkg/sdc/sdcerr"
	"github.com/cognicore/sdc/pkg/sdc/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database at path with WAL mode enabled and
// ensures the corpus schema exists.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS corpora (
	name           TEXT PRIMARY KEY,
	representation TEXT NOT NULL,
	threshold      REAL NOT NULL,
	strip_tokens   TEXT NOT NULL,
	built_at       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS corpus_tokens (
	corpus_name TEXT NOT NULL,
	position    INTEGER NOT NULL,
	token       TEXT NOT NULL,
	strip       INTEGER NOT NULL,
	PRIMARY KEY (corpus_name, position),
	FOREIGN KEY (corpus_name) REFERENCES corpora(name) ON DELETE CASCADE
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Close closes the underlying database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// Save inserts or replaces the definition named def.Name.
func (s *sqliteStore) Save(ctx context.Context, def store.Definition) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stripTokensJSON, err := json.Marshal(def.Config.StripTokens)
	if err != nil {
		return err
	}

	builtAt := def.BuiltAt
	if builtAt.IsZero() {
		builtAt = time.Now().UTC()
	}

	const upsert = `
INSERT INTO corpora (name, representation, threshold, strip_tokens, built_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
	representation=excluded.representation,
	threshold=excluded.threshold,
	strip_tokens=excluded.strip_tokens,
	built_at=excluded.built_at;
`
	if _, err := tx.ExecContext(ctx, upsert,
		def.Name, string(def.Config.Representation), def.Config.Threshold,
		string(stripTokensJSON), builtAt.Format(time.RFC3339Nano),
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM corpus_tokens WHERE corpus_name=?`, def.Name); err != nil {
		return err
	}

	insertTok, err := tx.PrepareContext(ctx, `
INSERT INTO corpus_tokens (corpus_name, position, token, strip) VALUES (?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer insertTok.Close()

	for i, tok := range def.Tokens {
		strip := i < len(def.Strip) && def.Strip[i]
		if _, err := insertTok.ExecContext(ctx, def.Name, i, tok, boolToInt(strip)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Load retrieves the definition named name.
func (s *sqliteStore) Load(ctx context.Context, name string) (store.Definition, bool, error) {
	var representation, stripTokensJSON, builtAtText string
	var threshold float64

	err := s.db.QueryRowContext(ctx,
		`SELECT representation, threshold, strip_tokens, built_at FROM corpora WHERE name=?`, name,
	).Scan(&representation, &threshold, &stripTokensJSON, &builtAtText)
	if err == sql.ErrNoRows {
		return store.Definition{}, false, nil
	}
	if err != nil {
		return store.Definition{}, false, err
	}

	var stripTokens []string
	if err := json.Unmarshal([]byte(stripTokensJSON), &stripTokens); err != nil {
		return store.Definition{}, false, err
	}
	builtAt, err := time.Parse(time.RFC3339Nano, builtAtText)
	if err != nil {
		return store.Definition{}, false, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT token, strip FROM corpus_tokens WHERE corpus_name=? ORDER BY position ASC`, name,
	)
	if err != nil {
		return store.Definition{}, false, err
	}
	defer rows.Close()

	var tokens []string
	var strip []bool
	for rows.Next() {
		var tok string
		var stripInt int
		if err := rows.Scan(&tok, &stripInt); err != nil {
			return store.Definition{}, false, err
		}
		tokens = append(tokens, tok)
		strip = append(strip, stripInt != 0)
	}
	if err := rows.Err(); err != nil {
		return store.Definition{}, false, err
	}

	return store.Definition{
		Name:   name,
		Tokens: tokens,
		Strip:  strip,
		Config: config.MatchConfig{
			Representation: config.Representation(representation),
			Threshold:      threshold,
			StripTokens:    stripTokens,
		},
		BuiltAt: builtAt,
	}, true, nil
}

// List returns all stored corpus names, sorted by name.
func (s *sqliteStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM corpora ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes the definition named name.
func (s *sqliteStore) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM corpora WHERE name=?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sdcerr.ErrNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
