package domain

import "strings"

// Render concatenates each line's exact text and terminator. A document that
// underwent no mutation renders byte-identically to its source; there is no
// trailing-newline normalization beyond what the source had.
func Render(doc Document) []byte {
	size := 0
	for _, ln := range doc.Lines {
		size += len(ln.Text()) + len(ln.Terminator())
	}

	var b strings.Builder
	b.Grow(size)
	for _, ln := range doc.Lines {
		b.WriteString(ln.Text())
		b.WriteString(ln.Terminator())
	}
	return []byte(b.String())
}
