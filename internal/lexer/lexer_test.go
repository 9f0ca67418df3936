package lexer

import (
	"testing"

	"github.com/k0kubun/cpplex/internal/token"
	"github.com/stretchr/testify/assert"
)

func allTokens(src string) []token.Token {
	l := New([]byte(src))
	var out []token.Token
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		out = append(out, tok)
		if tok.Kind == token.Eof {
			break
		}
	}
	return out
}

func render(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.String()
	}
	return out
}

func TestLexer_Idents(t *testing.T) {
	toks := allTokens("a bc\n")
	assert.Equal(t, []string{
		"{ident 'a'}", "{ident 'bc'}", "{EOL}", "{EOF}",
	}, render(toks))
}

func TestLexer_HeaderNameVsLessThan(t *testing.T) {
	toks := allTokens("#include <stdio.h>\na < b\n")
	assert.Equal(t, []string{
		"{punct .hash}", "{ident 'include'}", "{string_lit '<stdio.h>'}", "{EOL}",
		"{ident 'a'}", "{punct .lt}", "{ident 'b'}", "{EOL}", "{EOF}",
	}, render(toks))
}

func TestLexer_DigraphsAndPreprocessingNumber(t *testing.T) {
	toks := allTokens("<:%>%:%: 0x1.8p+1f\n")
	assert.Equal(t, []string{
		"{punct .l_brack}", "{punct .r_brace}", "{punct .hash_hash}",
		"{number '0x1.8p+1f'}", "{EOL}", "{EOF}",
	}, render(toks))
}

func TestLexer_PlainHashDigraph(t *testing.T) {
	toks := allTokens("%: define\n")
	assert.Equal(t, "{punct .hash}", toks[0].String())
}

func TestLexer_StringWithEmbeddedCommentSyntax(t *testing.T) {
	toks := allTokens("\"/*not a comment*/\"\n")
	assert.Equal(t, []string{
		"{string_lit '\"/*not a comment*/\"'}", "{EOL}", "{EOF}",
	}, render(toks))
}

func TestLexer_LtNotInDirectiveFallsBackToPunct(t *testing.T) {
	toks := allTokens("<x>\n")
	assert.Equal(t, "{punct .lt}", toks[0].String())
}

func TestLexer_EofExactlyOnceAtEnd(t *testing.T) {
	toks := allTokens("a\n")
	assert.Equal(t, token.Eof, toks[len(toks)-1].Kind)
	for _, tok := range toks[:len(toks)-1] {
		assert.NotEqual(t, token.Eof, tok.Kind)
	}
	l := New([]byte("a\n"))
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		if tok.Kind == token.Eof {
			_, ok := l.Next()
			assert.False(t, ok)
		}
	}
}

func TestLexer_EolOncePerLine(t *testing.T) {
	toks := allTokens("a\nb\nc\n")
	eols := 0
	for _, tok := range toks {
		if tok.Kind == token.Eol {
			eols++
		}
	}
	assert.Equal(t, 3, eols)
}

func TestLexer_DotAloneIsPunct(t *testing.T) {
	toks := allTokens(". ..\n")
	assert.Equal(t, "{punct .period}", toks[0].String())
}

func TestLexer_Ellipsis(t *testing.T) {
	toks := allTokens("...\n")
	assert.Equal(t, "{punct .ellipsis}", toks[0].String())
}

func TestLexer_DirectiveClearsAtNewline(t *testing.T) {
	toks := allTokens("#define X\n<Y>\n")
	// second line's `<` is not in a directive context, so it's a punct
	// rather than the start of a `<Y>` header name.
	var sawSecondLt bool
	for i, tok := range toks {
		if i > 0 && tok.Kind == token.PunctKind && tok.Punct == token.Lt {
			sawSecondLt = true
		}
	}
	assert.True(t, sawSecondLt)
}

func TestLexer_NumberWithUnderscoreAndLetters(t *testing.T) {
	toks := allTokens("123abc_def\n")
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.Equal(t, "123abc_def", string(toks[0].Text))
}

func TestLexer_SingleQuoteChar(t *testing.T) {
	toks := allTokens("'a'\n")
	assert.Equal(t, token.StringLit, toks[0].Kind)
	assert.Equal(t, "'a'", string(toks[0].Text))
}

func TestLexer_OtherByte(t *testing.T) {
	toks := allTokens("$\n")
	assert.Equal(t, token.Other, toks[0].Kind)
	assert.Equal(t, "$", string(toks[0].Text))
}
