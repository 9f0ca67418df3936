package lexer

import "github.com/k0kubun/cpplex/internal/token"

// scanStringLit handles `"..."`, `'...'`, and (when in_directive) the
// header-name form `<...>` (spec §4.5). The scan is refused up front
// when the byte after the opener is `:` or `%`, so the digraphs `<:`
// and `<%` are left for the punctuator scanner. A literal newline
// always terminates scanning without consuming it.
func (l *Lexer) scanStringLit() (token.Token, bool) {
	first, _ := l.get()
	var terminator byte
	switch first {
	case '"':
		terminator = '"'
	case '\'':
		terminator = '\''
	case '<':
		terminator = '>'
	}

	start := l.pos
	l.moveOn()

	if ch, ok := l.get(); ok && (ch == ':' || ch == '%') {
		l.pos = start
		return token.Token{}, false
	}

	for {
		ch, ok := l.get()
		if !ok {
			break
		}
		if ch == terminator {
			l.moveOn()
			return l.endToken(token.Token{Kind: token.StringLit, Text: l.buf[start:l.pos]}), true
		}
		if ch == '\\' && first != '<' {
			l.moveOn()
			l.moveOn()
			continue
		}
		if ch == '\n' {
			break
		}
		l.moveOn()
	}

	if first == '<' {
		l.pos = start
		return token.Token{}, false
	}
	return l.endToken(token.Token{Kind: token.Other, Text: l.buf[start:l.pos]}), true
}
