// Package mysql is an internal/corpus backend for shared token caches,
// grounded on database/mysql/database.go's driver wiring (the
// go-sql-driver/mysql import and sql.Open("mysql", dsn) call), adapted
// from schema dumping to cache storage.
package mysql

import (
	"database/sql"
	"fmt"

	"github.com/k0kubun/cpplex/internal/corpus"

	_ "github.com/go-sql-driver/mysql"
)

// createTableSQL uses VARCHAR(64) for the hash column; MySQL rejects a
// TEXT/BLOB column used as (part of) a key without an explicit prefix
// length (error 1170), and the hash is always a fixed-width 64-char hex
// SHA-256, so corpus.CreateTableSQL's TEXT PRIMARY KEY isn't usable here.
const createTableSQL = `CREATE TABLE IF NOT EXISTS cpplex_cache (
	hash VARCHAR(64) PRIMARY KEY,
	materialized BLOB NOT NULL,
	token_count INTEGER NOT NULL,
	first_other TEXT NOT NULL
)`

type store struct {
	db      *sql.DB
	putStmt *sql.Stmt
	getStmt *sql.Stmt
}

// Open attaches to a MySQL-backed token cache. dsn is a
// go-sql-driver/mysql DSN (e.g. "user:pass@tcp(host:3306)/dbname").
func Open(dsn string) (corpus.Store, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache table: %w", err)
	}

	putStmt, err := db.Prepare(`INSERT INTO cpplex_cache (hash, materialized, token_count, first_other)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE materialized = VALUES(materialized),
			token_count = VALUES(token_count), first_other = VALUES(first_other)`)
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
