// Package ppline implements the line-oriented preprocessing buffer: the
// annotated line model (§3/§4.1 of the preprocessor core) and the
// backslash-newline splice stage (§4.2).
package ppline

// Line is one logical or physical line of source text together with two
// parallel bit-vectors of equal length: trivial marks bytes dropped from
// the materialized output, synthetic marks bytes the preprocessor
// inserted rather than copied from source.
type Line struct {
	Text      []byte
	Trivial   []bool
	Synthetic []bool
}

// Empty returns a zero-length line satisfying the length invariant
// trivially (0 == 0 == 0).
func Empty() Line {
	return Line{}
}

// Len returns the shared length of Text, Trivial, and Synthetic.
func (l *Line) Len() int {
	return len(l.Text)
}

// Append adds one annotated byte to the end of the line.
func (l *Line) Append(ch byte, trivial, synthetic bool) {
	l.Text = append(l.Text, ch)
	l.Trivial = append(l.Trivial, trivial)
	l.Synthetic = append(l.Synthetic, synthetic)
}

// AppendLine appends another line's bytes and annotations wholesale.
func (l *Line) AppendLine(other Line) {
	l.Text = append(l.Text, other.Text...)
	l.Trivial = append(l.Trivial, other.Trivial...)
	l.Synthetic = append(l.Synthetic, other.Synthetic...)
}

// CharAt returns the byte and its two flags at position i.
func (l *Line) CharAt(i int) (ch byte, trivial, synthetic bool) {
	return l.Text[i], l.Trivial[i], l.Synthetic[i]
}

// SetTrivial sets the trivial flag at position i to trivial.
func (l *Line) SetTrivial(i int, trivial bool) {
	l.Trivial[i] = trivial
}

// NonTrivial returns the subsequence of bytes whose trivial flag is
// false, in order. Used only at materialize time (§4.4).
func (l *Line) NonTrivial() []byte {
	out := make([]byte, 0, len(l.Text))
	for i, ch := range l.Text {
		if !l.Trivial[i] {
			out = append(out, ch)
		}
	}
	return out
}

// Take moves this line's buffers out into a fresh Line, leaving the
// receiver empty. Used to move a line out of a Lines sequence while the
// read index advances past it.
func (l *Line) Take() Line {
	out := *l
	*l = Line{}
	return out
}

// Lines is an ordered sequence of annotated lines, owned by whichever
// stage currently holds it.
type Lines []Line

// Split breaks raw input on \n (and \r\n) boundaries, matching standard
// line semantics: each terminator is consumed but not included in the
// line text. Every new line starts with both bit-vectors false.
func Split(src []byte) Lines {
	var lines Lines
	start := 0
	for i := 0; i < len(src); i++ {
		if src[i] != '\n' {
			continue
		}
		end := i
		if end > start && src[end-1] == '\r' {
			end--
		}
		lines = append(lines, newPlainLine(src[start:end]))
		start = i + 1
	}
	if start < len(src) {
		lines = append(lines, newPlainLine(src[start:]))
	}
	return lines
}

func newPlainLine(text []byte) Line {
	buf := make([]byte, len(text))
	copy(buf, text)
	return Line{
		Text:      buf,
		Trivial:   make([]bool, len(text)),
		Synthetic: make([]bool, len(text)),
	}
}
