// Package cpp wires the line model, splice stage, comment-strip stage,
// materialize step, and phase-3 tokenizer into a single preprocessing
// pipeline (spec §2, §4). It plays the orchestration role `sqldef.Run`
// plays for the teacher's dump -> diff -> generate flow: each stage
// consumes its predecessor's owned output and produces a new one.
package cpp

import (
	"github.com/k0kubun/cpplex/internal/comment"
	"github.com/k0kubun/cpplex/internal/lexer"
	"github.com/k0kubun/cpplex/internal/ppline"
	"github.com/k0kubun/cpplex/internal/token"
)

// Result is the full output of one preprocessing run: the materialized
// byte buffer the tokenizer scanned, and the complete token stream it
// produced (always ending in exactly one token.Eof).
type Result struct {
	Materialized []byte
	Tokens       []token.Token
}

// Preprocess runs the whole pipeline over src: line splitting, backslash
// splicing, comment stripping, materialization, and tokenization. The
// core never fails outright (spec §5) — unclassified input surfaces as
// token.Other tokens rather than an error — so error is reserved for
// future callers (e.g. a cache-backed front end) and is always nil here.
func Preprocess(src []byte) (*Result, error) {
	lines := ppline.Split(src)
	lines = ppline.Splice(lines)
	lines = comment.Strip(lines)
	materialized := comment.Materialize(lines)

	lx := lexer.New(materialized)
	var tokens []token.Token
	for {
		tok, ok := lx.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.Eof {
			break
		}
	}

	return &Result{Materialized: materialized, Tokens: tokens}, nil
}
