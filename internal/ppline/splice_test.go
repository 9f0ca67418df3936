package ppline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func materializeNonTrivial(lines Lines) string {
	var out []byte
	for _, l := range lines {
		out = append(out, l.NonTrivial()...)
		out = append(out, '\n')
	}
	return string(out)
}

func TestSplice_BasicJoin(t *testing.T) {
	lines := Split([]byte("a b\\\nc\n"))
	spliced := Splice(lines)
	assert.Len(t, spliced, 1)
	assert.Equal(t, "a bc\n", materializeNonTrivial(spliced))
}

func TestSplice_NoBackslash(t *testing.T) {
	lines := Split([]byte("a\nb\n"))
	spliced := Splice(lines)
	assert.Len(t, spliced, 2)
}

func TestSplice_MultiLineChain(t *testing.T) {
	lines := Split([]byte("a\\\nb\\\nc\n"))
	spliced := Splice(lines)
	assert.Len(t, spliced, 1)
	assert.Equal(t, "abc\n", materializeNonTrivial(spliced))
}

func TestSplice_TrailingBackslashAtEOF(t *testing.T) {
	lines := Split([]byte("a\\"))
	spliced := Splice(lines)
	assert.Len(t, spliced, 1)
	assert.Equal(t, "a\n", materializeNonTrivial(spliced))
}

func TestSplice_Idempotent(t *testing.T) {
	lines := Split([]byte("a b\\\nc\nd\n"))
	once := Splice(lines)
	// Splice takes each line out of its input, so once is measured
	// before it is spliced a second time.
	onceText, onceLen := materializeNonTrivial(once), len(once)
	twice := Splice(once)
	assert.Equal(t, onceText, materializeNonTrivial(twice))
	assert.Equal(t, onceLen, len(twice))
}

func TestSplice_BackslashByteStaysInText(t *testing.T) {
	lines := Split([]byte("a\\\nb\n"))
	spliced := Splice(lines)
	assert.Equal(t, "a\\b", string(spliced[0].Text))
	assert.True(t, spliced[0].Trivial[1])
}
