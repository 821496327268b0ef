package domain

import "strings"

// Parse splits raw file bytes into a Document. It never fails: lines with no
// signature marker stay foreign, and lines that carry the marker but do not
// decode are demoted to foreign as well, orphaning them from future sweeps
// until a human fixes or deletes them. Empty input yields an empty document.
func Parse(b []byte) Document {
	if len(b) == 0 {
		return Document{}
	}

	var lines []Line
	s := string(b)
	for s != "" {
		text, end := cutLine(s)
		lines = append(lines, classify(text, end))
		s = s[len(text)+len(end):]
	}
	return Document{Lines: lines}
}

// cutLine returns the first line of s and its terminator. A lone "\r" is not
// treated as a boundary; it stays inside the line text and round-trips as-is.
func cutLine(s string) (text, end string) {
	i := strings.IndexByte(s, '\n')
	if i < 0 {
		return s, ""
	}
	if i > 0 && s[i-1] == '\r' {
		return s[:i-1], "\r\n"
	}
	return s[:i], "\n"
}

func classify(text, end string) Line {
	if !strings.Contains(text, marker) {
		return Foreign{Raw: text, End: end}
	}

	rec, err := DecodeRecord(text)
	if err != nil {
		return Foreign{Raw: text, End: end}
	}
	return Managed{Record: rec, Raw: text, End: end}
}
