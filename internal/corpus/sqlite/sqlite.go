// Package sqlite is an internal/corpus backend: a single-file, pure-Go
// cache that cmd/cpplex uses with --cache-driver sqlite (with no driver
// given, cmd/cpplex runs without a cache).
// Grounded on database/sqlite3/database.go's sql.Open("sqlite", ...)
// pattern, swapping the cgo mattn/go-sqlite3 driver the teacher's dead
// duplicate file used for the pure-Go modernc.org/sqlite one (see
// DESIGN.md).
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/k0kubun/cpplex/internal/corpus"
	_ "modernc.org/sqlite"
)

type store struct {
	db      *sql.DB
	putStmt *sql.Stmt
	getStmt *sql.Stmt
}

// Open creates or attaches to a sqlite-backed token cache at dsn (a
// file path, or ":memory:" for an ephemeral cache).
func Open(dsn string) (corpus.Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(corpus.CreateTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache table: %w", err)
	}

	putStmt, err := db.Prepare(`INSERT INTO cpplex_cache (hash, materialized, token_count, first_other)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(hash) DO UPDATE SET materialized = excluded.materialized,
			token_count = excluded.token_count, first_other = excluded.first_other`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing insert statement: %w", err)
	}

	getStmt, err := db.Prepare(`SELECT materialized, token_count, first_other FROM cpplex_cache WHERE hash = ?`)
	if err != nil {
		putStmt.Close()
		db.Close()
		return nil, fmt.Errorf("preparing select statement: %w", err)
	}

	return &store{db: db, putStmt: putStmt, getStmt: getStmt}, nil
}

func (s *store) Put(hash string, entry corpus.Entry) error {
	_, err := s.putStmt.Exec(hash, entry.Materialized, entry.TokenCount, entry.FirstOther)
	return err
}

func (s *store) Get(hash string) (corpus.Entry, bool, error) {
	var entry corpus.Entry
	row := s.getStmt.QueryRow(hash)
	err := row.Scan(&entry.Materialized, &entry.TokenCount, &entry.FirstOther)
	if err == sql.ErrNoRows {
		return corpus.Entry{}, false, nil
	}
	if err != nil {
		return corpus.Entry{}, false, err
	}
	return entry, true, nil
}

func (s *store) Close() error {
	s.putStmt.Close()
	s.getStmt.Close()
	return s.db.Close()
}
