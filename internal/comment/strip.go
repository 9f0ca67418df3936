// Package comment implements the comment-strip stage (spec §4.3): a
// single left-to-right pass over every logical line that drives a small
// state machine over {Normal, InString, InLineComment, InBlockComment},
// plus materialize (§4.4).
package comment

import "github.com/k0kubun/cpplex/internal/ppline"

// stripper tracks the comment/string state across an entire Lines
// sequence. InBlockComment persists across physical lines; InString and
// InLineComment do not (see the "string literal spanning a raw newline"
// resolution in DESIGN.md).
type stripper struct {
	inString       bool
	inBlockComment bool
	inLineComment  bool
	prevChar       byte
}

type emission struct {
	ch       byte
	popCount int
}

// step decides whether ch should be emitted (possibly substituted) given
// the current state, and advances that state. ok is false when ch must
// be suppressed entirely (no substitute).
func (s *stripper) step(ch byte) (em emission, ok bool) {
	switch {
	case s.inString:
		if ch == '"' && s.prevChar != '\\' {
			s.inString = false
		}
		return emission{ch: ch}, true

	case s.inBlockComment && ch == '/' && s.prevChar == '*':
		s.inBlockComment = false
		return emission{}, false

	case s.inLineComment && ch == '\n':
		s.inLineComment = false
		return emission{ch: ch}, true

	case s.inLineComment || s.inBlockComment:
		return emission{}, false

	default:
		switch ch {
		case '/':
			if s.prevChar == '/' {
				s.inLineComment = true
				return emission{ch: ' ', popCount: 2}, true
			}
			return emission{ch: ch}, true
		case '*':
			if s.prevChar == '/' {
				s.inBlockComment = true
				return emission{ch: ' ', popCount: 2}, true
			}
			return emission{ch: ch}, true
		case '"':
			s.inString = !s.inString
			return emission{ch: ch}, true
		default:
			return emission{ch: ch}, true
		}
	}
}

// backtrack walks builder leftward, skipping bytes already marked
// trivial, and flips the next n non-trivial flags to trivial. This is
// how the two opener bytes of `//` or `/*` get retroactively suppressed
// once their second byte arrives.
func backtrack(l *ppline.Line, n int) {
	i := l.Len()
	for k := 0; k < n; k++ {
		for i > 0 && l.Trivial[i-1] {
			i--
		}
		if i > 0 {
			l.Trivial[i-1] = true
		}
	}
}

// Strip runs the comment-strip stage over a spliced Lines sequence.
// A line that ends inside a block comment is not emitted on its own: its
// bytes are carried over and joined with the following line(s) until the
// comment closes, so the result can hold fewer lines than the input. If
// the comment never closes, none of the carried text is emitted.
func Strip(lines ppline.Lines) ppline.Lines {
	s := &stripper{}
	var builder ppline.Line
	out := make(ppline.Lines, 0, len(lines))

	for _, line := range lines {
		for i := 0; i < line.Len(); i++ {
			ch, trivial, synthetic := line.CharAt(i)
			builder.Append(ch, trivial, synthetic)

			em, ok := s.step(ch)
			if ok {
				if em.ch != ch {
					backtrack(&builder, em.popCount)
					builder.Append(em.ch, false, true)
				}
			} else {
				builder.SetTrivial(builder.Len()-1, true)
			}

			if !trivial {
				s.prevChar = ch
			}
		}

		em, ok := s.step('\n')
		if ok {
			if em.ch != '\n' {
				backtrack(&builder, em.popCount)
				builder.Append(em.ch, false, true)
			}
		} else if builder.Len() > 0 {
			builder.SetTrivial(builder.Len()-1, true)
		}
		s.prevChar = '\n'
		s.inString = false

		if !s.inBlockComment {
			out = append(out, builder.Take())
		}
	}

	return out
}
