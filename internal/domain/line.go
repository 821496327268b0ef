package domain

// Line is one line of a hosts file: either Foreign content the tool must
// leave untouched, or a Managed record it owns. The variant set is closed so
// the parser can classify every line exhaustively.
type Line interface {
	// Text returns the line's bytes without its terminator.
	Text() string
	// Terminator returns the line's own ending: "\n", "\r\n", or "" for a
	// final line without one. Keeping it per line lets mixed-ending files
	// round-trip exactly.
	Terminator() string

	line()
}

// Foreign is any line not owned by this tool, preserved byte-for-byte.
type Foreign struct {
	Raw string
	End string
}

func (f Foreign) Text() string       { return f.Raw }
func (f Foreign) Terminator() string { return f.End }
func (Foreign) line()                {}

// Managed is a line carrying one of our records. Raw keeps the source bytes
// so an untouched document renders byte-identically even when the original
// spacing differs from the canonical encoding.
type Managed struct {
	Record Record
	Raw    string
	End    string
}

func (m Managed) Text() string       { return m.Raw }
func (m Managed) Terminator() string { return m.End }
func (Managed) line()                {}

// NewManaged builds a managed line in canonical encoding.
func NewManaged(r Record, end string) Managed {
	return Managed{Record: r, Raw: EncodeRecord(r), End: end}
}

// Document is a whole hosts file as an ordered line sequence. Order is
// significant: it preserves the original layout, and new records append at
// the end.
type Document struct {
	Lines []Line
}

// Records returns the managed records in document order.
func (d Document) Records() []Record {
	var out []Record
	for _, ln := range d.Lines {
		if m, ok := ln.(Managed); ok {
			out = append(out, m.Record)
		}
	}
	return out
}
