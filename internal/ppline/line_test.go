package ppline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	lines := Split([]byte("a\nb\r\nc"))
	assert.Len(t, lines, 3)
	assert.Equal(t, "a", string(lines[0].Text))
	assert.Equal(t, "b", string(lines[1].Text))
	assert.Equal(t, "c", string(lines[2].Text))
	for _, l := range lines {
		assert.Len(t, l.Trivial, l.Len())
		assert.Len(t, l.Synthetic, l.Len())
	}
}

func TestSplit_TrailingNewline(t *testing.T) {
	lines := Split([]byte("a\nb\n"))
	assert.Len(t, lines, 2)
}

func TestSplit_Empty(t *testing.T) {
	lines := Split(nil)
	assert.Len(t, lines, 0)
}

func TestLine_NonTrivial(t *testing.T) {
	l := Line{}
	l.Append('a', false, false)
	l.Append('b', true, false)
	l.Append('c', false, false)
	assert.Equal(t, "ac", string(l.NonTrivial()))
}

func TestLine_Take(t *testing.T) {
	l := Line{}
	l.Append('x', false, false)
	taken := l.Take()
	assert.Equal(t, "x", string(taken.Text))
	assert.Equal(t, 0, l.Len())
}
