package ppline

// Splice fuses adjacent physical lines whose last byte is a backslash
// into one logical line (spec §4.2). The two spliced bytes — the
// backslash and the line break it absorbed — are marked trivial so that
// downstream positions are preserved; the backslash byte itself stays in
// the text (only its trivial flag changes), and the line break has no
// byte of its own to mark because Split already dropped line
// terminators from line text.
func Splice(lines Lines) Lines {
	out := make(Lines, len(lines))
	var builder Line
	haveCarry := false
	writeIdx := 0

	for rd := range lines {
		line := lines[rd].Take()
		if endsWithBackslash(line) {
			last := len(line.Trivial) - 1
			line.Trivial[last] = true
			builder.AppendLine(line)
			haveCarry = true
			continue
		}

		if !haveCarry {
			out[writeIdx] = line
		} else {
			builder.AppendLine(line)
			out[writeIdx] = builder.Take()
			haveCarry = false
		}
		writeIdx++
	}

	if haveCarry {
		out[writeIdx] = builder.Take()
		writeIdx++
	}

	return out[:writeIdx]
}

func endsWithBackslash(l Line) bool {
	return len(l.Text) > 0 && l.Text[len(l.Text)-1] == '\\'
}
