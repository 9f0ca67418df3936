package lexer

import "github.com/k0kubun/cpplex/internal/token"

// scanNumber implements the preprocessing-number grammar (spec §4.5): a
// maximal run matching (\.?[0-9])([0-9._A-Za-z] | [eEpP][+-]?)*. If the
// token begins with `.` and the next byte isn't a digit, scanning
// rewinds and reports rejection so the caller falls back to punctuator
// scanning (this is how `...` and lone `.` stay punctuators).
func (l *Lexer) scanNumber() (token.Token, bool) {
	first, _ := l.get()
	start := l.pos
	l.moveOn()

	if first == '.' {
		if ch, ok := l.get(); !ok || !isDigit(ch) {
			l.pos = start
			return token.Token{}, false
		}
	}

loop:
	for {
		ch, ok := l.get()
		if !ok {
			break
		}
		switch {
		case ch == 'e' || ch == 'E' || ch == 'p' || ch == 'P':
			l.moveOn()
			if sign, ok := l.get(); ok && (sign == '+' || sign == '-') {
				l.moveOn()
			}
		case isDigit(ch) || ch == '.' || ch == '_' || isIdentStart(ch):
			l.moveOn()
		default:
			break loop
		}
	}

	return l.endToken(token.Token{Kind: token.Number, Text: l.buf[start:l.pos]}), true
}
