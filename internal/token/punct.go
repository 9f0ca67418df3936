package token

import "strings"

// Punct is the closed set of C11 punctuator kinds (spec §6), including
// the digraph spellings which map onto the same kinds as their primary
// spelling (e.g. `<:` and `[` are both LBrack).
type Punct int

const (
	Period Punct = iota
	Arrow
	PlusPlus
	MinusMinus
	Amp
	Plus
	Minus
	Tilde
	Bang
	Slash
	Percent
	LtLt
	GtGt
	Lt
	Gt
	LtEq
	GtEq
	EqEq
	BangEq
	Caret
	Pipe
	AmpAmp
	PipePipe
	Question
	StarEq
	SlashEq
	PercentEq
	PlusEq
	MinusEq
	LtLtEq
	GtGtEq
	AmpEq
	CaretEq
	PipeEq
	HashHash

	LBrack
	RBrack
	LParen
	RParen
	Star
	Comma
	Colon
	Eq
	Hash

	LBrace
	RBrace
	Semicolon
	Ellipsis
)

var punctNames = [...]string{
	Period:     "Period",
	Arrow:      "Arrow",
	PlusPlus:   "PlusPlus",
	MinusMinus: "MinusMinus",
	Amp:        "Amp",
	Plus:       "Plus",
	Minus:      "Minus",
	Tilde:      "Tilde",
	Bang:       "Bang",
	Slash:      "Slash",
	Percent:    "Percent",
	LtLt:       "LtLt",
	GtGt:       "GtGt",
	Lt:         "Lt",
	Gt:         "Gt",
	LtEq:       "LtEq",
	GtEq:       "GtEq",
	EqEq:       "EqEq",
	BangEq:     "BangEq",
	Caret:      "Caret",
	Pipe:       "Pipe",
	AmpAmp:     "AmpAmp",
	PipePipe:   "PipePipe",
	Question:   "Question",
	StarEq:     "StarEq",
	SlashEq:    "SlashEq",
	PercentEq:  "PercentEq",
	PlusEq:     "PlusEq",
	MinusEq:    "MinusEq",
	LtLtEq:     "LtLtEq",
	GtGtEq:     "GtGtEq",
	AmpEq:      "AmpEq",
	CaretEq:    "CaretEq",
	PipeEq:     "PipeEq",
	HashHash:   "HashHash",
	LBrack:     "LBrack",
	RBrack:     "RBrack",
	LParen:     "LParen",
	RParen:     "RParen",
	Star:       "Star",
	Comma:      "Comma",
	Colon:      "Colon",
	Eq:         "Eq",
	Hash:       "Hash",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	Semicolon:  "Semicolon",
	Ellipsis:   "Ellipsis",
}

// name returns the PascalCase enumerator name, matching the Rust source
// enum this was ported from.
func (p Punct) name() string {
	if int(p) < 0 || int(p) >= len(punctNames) {
		return "Invalid"
	}
	return punctNames[p]
}

// snakeName transliterates the PascalCase enumerator name to
// snake_case for the Display form in spec §6 (e.g. PlusPlus ->
// plus_plus). There's no case-conversion library in the dependency
// corpus this module draws from, so this is hand-rolled rather than
// imported.
func (p Punct) snakeName() string {
	name := p.name()
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
