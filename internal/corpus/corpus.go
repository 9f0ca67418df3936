// Package corpus defines the token-cache abstraction a batch cpplex run
// consults before re-running the line/splice/comment/lex pipeline over
// an unchanged source file. It mirrors the shape of the teacher's
// database.Database interface — one small interface, several SQL
// backends behind it — repurposed so that "dump DDLs for this schema"
// becomes "preprocess these bytes once, remember the result".
package corpus

import "fmt"

// Entry is what gets cached per source hash: the materialized buffer
// phase-3 tokenization scans, a token count for quick reporting, and the
// source text of the first token.Other token seen (if any), which is
// usually what a caller wants to know about without re-scanning.
type Entry struct {
	Materialized []byte
	TokenCount   int
	FirstOther   string
}

// Store is the abstraction every backend implements (sqlite, mysql,
// postgres, mssql). Never deal with preprocessing semantics here —
// a Store only ever moves Entry values in and out by content hash.
type Store interface {
	Put(hash string, entry Entry) error
	Get(hash string) (Entry, bool, error)
	Close() error
}

// CreateTableSQL is the sqlite dialect of the cache schema: sqlite's
// dynamic typing tolerates a TEXT PRIMARY KEY with no declared length.
// The other three backends each declare their own createTableSQL with a
// dialect-appropriate hash key and blob column (mysql needs a bounded
// VARCHAR since MySQL rejects a TEXT/BLOB column used as a key without
// an explicit prefix length; postgres spells a blob column BYTEA;
// mssql spells it VARBINARY(MAX) and can't use IF NOT EXISTS at all).
const CreateTableSQL = `CREATE TABLE IF NOT EXISTS cpplex_cache (
	hash TEXT PRIMARY KEY,
	materialized BLOB NOT NULL,
	token_count INTEGER NOT NULL,
	first_other TEXT NOT NULL
)`

// ErrNotFound is not returned by any backend in this module: Get
// surfaces a cache miss as (Entry{}, false, nil) instead, matching the
// "bool, not error" cache-miss idiom in Go stdlib maps.
var ErrNotFound = fmt.Errorf("corpus: entry not found")
