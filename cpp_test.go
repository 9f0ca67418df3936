package cpp

import (
	"testing"

	"github.com/k0kubun/cpplex/internal/token"
	"github.com/stretchr/testify/assert"
)

func renderTokens(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.String()
	}
	return out
}

func TestPreprocess_Scenario1_LineSplice(t *testing.T) {
	res, err := Preprocess([]byte("a b\\\nc\n"))
	assert.NoError(t, err)
	assert.Equal(t, "a bc\n", string(res.Materialized))
	assert.Equal(t, []string{
		"{ident 'a'}", "{ident 'b'}", "{ident 'c'}", "{EOL}", "{EOF}",
	}, renderTokens(res.Tokens))
}

func TestPreprocess_Scenario2_BlockCommentAcrossLines(t *testing.T) {
	res, err := Preprocess([]byte("x /* com\nment */ y\n"))
	assert.NoError(t, err)
	assert.Equal(t, "x   y\n", string(res.Materialized))
	assert.Equal(t, []string{
		"{ident 'x'}", "{ident 'y'}", "{EOL}", "{EOF}",
	}, renderTokens(res.Tokens))
}

func TestPreprocess_Scenario3_LineComment(t *testing.T) {
	res, err := Preprocess([]byte("a // note\nb\n"))
	assert.NoError(t, err)
	assert.Equal(t, "a  \nb\n", string(res.Materialized))
	assert.Equal(t, []string{
		"{ident 'a'}", "{EOL}", "{ident 'b'}", "{EOL}", "{EOF}",
	}, renderTokens(res.Tokens))
}

func TestPreprocess_Scenario4_StringWithEmbeddedCommentSyntax(t *testing.T) {
	res, err := Preprocess([]byte("\"/*not a comment*/\"\n"))
	assert.NoError(t, err)
	assert.Equal(t, "\"/*not a comment*/\"\n", string(res.Materialized))
	assert.Equal(t, []string{
		"{string_lit '\"/*not a comment*/\"'}", "{EOL}", "{EOF}",
	}, renderTokens(res.Tokens))
}

func TestPreprocess_Scenario5_HeaderNameVsLessThan(t *testing.T) {
	res, err := Preprocess([]byte("#include <stdio.h>\na < b\n"))
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"{punct .hash}", "{ident 'include'}", "{string_lit '<stdio.h>'}", "{EOL}",
		"{ident 'a'}", "{punct .lt}", "{ident 'b'}", "{EOL}", "{EOF}",
	}, renderTokens(res.Tokens))
}

func TestPreprocess_Scenario6_DigraphsAndPreprocessingNumber(t *testing.T) {
	res, err := Preprocess([]byte("<:%>%:%: 0x1.8p+1f\n"))
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"{punct .l_brack}", "{punct .r_brace}", "{punct .hash_hash}",
		"{number '0x1.8p+1f'}", "{EOL}", "{EOF}",
	}, renderTokens(res.Tokens))
}

// P6 — exactly one Eof, always last; Eol appears exactly once per
// logical line.
func TestPreprocess_P6_ExactlyOneEofLast(t *testing.T) {
	res, err := Preprocess([]byte("a\nb\nc\n"))
	assert.NoError(t, err)
	last := res.Tokens[len(res.Tokens)-1]
	assert.Equal(t, token.Eof, last.Kind)
	eofCount, eolCount := 0, 0
	for _, tok := range res.Tokens {
		if tok.Kind == token.Eof {
			eofCount++
		}
		if tok.Kind == token.Eol {
			eolCount++
		}
	}
	assert.Equal(t, 1, eofCount)
	assert.Equal(t, 3, eolCount)
}

// P7 — in_directive semantics: a header-name StringLit is emitted only
// when preceded on the same logical line by a leading `#`.
func TestPreprocess_P7_HeaderNameRequiresLeadingHash(t *testing.T) {
	res, err := Preprocess([]byte("x #include <a>\n"))
	assert.NoError(t, err)
	for _, tok := range res.Tokens {
		if tok.Kind == token.StringLit {
			t.Fatalf("unexpected header-name literal when # wasn't line-leading: %v", tok)
		}
	}
}

func TestPreprocess_EmptyInput(t *testing.T) {
	res, err := Preprocess(nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"{EOF}"}, renderTokens(res.Tokens))
}
