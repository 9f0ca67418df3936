package comment

import "github.com/k0kubun/cpplex/internal/ppline"

// Materialize flattens a Lines sequence into the byte buffer phase-3
// tokenization actually scans (spec §4.4): the non-trivial bytes of each
// line, followed by one synthesized newline per logical line regardless
// of how many physical lines it absorbed.
func Materialize(lines ppline.Lines) []byte {
	var out []byte
	for _, l := range lines {
		out = append(out, l.NonTrivial()...)
		out = append(out, '\n')
	}
	return out
}
