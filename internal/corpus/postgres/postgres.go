// Package postgres is an internal/corpus backend, grounded on
// database/postgres/database.go's driver wiring (the blank-imported
// lib/pq and sql.Open("postgres", dsn) call), adapted from schema
// dumping to cache storage.
package postgres

import (
	"database/sql"
	"fmt"

	"github.com/k0kubun/cpplex/internal/corpus"

	_ "github.com/lib/pq"
)

// createTableSQL uses BYTEA, Postgres's spelling of a binary blob
// column; corpus.CreateTableSQL's BLOB column type is not Postgres
// syntax.
const createTableSQL = `CREATE TABLE IF NOT EXISTS cpplex_cache (
	hash TEXT PRIMARY KEY,
	materialized BYTEA NOT NULL,
	token_count INTEGER NOT NULL,
	first_other TEXT NOT NULL
)`

type store struct {
	db      *sql.DB
	putStmt *sql.Stmt
	getStmt *sql.Stmt
}

// Open attaches to a Postgres-backed token cache. dsn is a lib/pq
// connection string or URL.
func Open(dsn string) (corpus.Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache table: %w", err)
	}

	putStmt, err := db.Prepare(`INSERT INTO cpplex_cache (hash, materialized, token_count, first_other)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (hash) DO UPDATE SET materialized = excluded.materialized,
			token_count = excluded.token_count, first_other = excluded.first_other`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing insert statement: %w", err)
	}

	getStmt, err := db.Prepare(`SELECT materialized, token_count, first_other FROM cpplex_cache WHERE hash = $1`)
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
