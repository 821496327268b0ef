package domain

import "strings"

// Command is a reconciliation request against a Document. Like Line it is a
// closed sum: Apply handles every variant.
type Command interface {
	command()
}

// Add inserts an alias, or refreshes it in place when a live record for the
// same domain already exists. A TTLSeconds of zero or below means
// DefaultTTLSeconds.
type Add struct {
	Domain     string
	TTLSeconds int64
}

// Remove drops the alias for a domain. Removing an absent domain is a no-op.
type Remove struct {
	Domain string
}

// RemoveExpired performs the expiry sweep and nothing else.
type RemoveExpired struct{}

func (Add) command()           {}
func (Remove) command()        {}
func (RemoveExpired) command() {}

// Apply reconciles a document against a command at the given unix time. It
// is pure and never fails.
//
// Every invocation first sweeps all expired managed records, whatever the
// command; add, remove and remove-expired differ only in what they do
// afterwards. The relative order of surviving lines is preserved exactly.
func Apply(doc Document, cmd Command, now int64) Document {
	out := make([]Line, 0, len(doc.Lines)+1)
	for _, ln := range doc.Lines {
		if m, ok := ln.(Managed); ok && m.Record.Expired(now) {
			continue
		}
		out = append(out, ln)
	}

	switch c := cmd.(type) {
	case RemoveExpired:
		// Sweep only.
	case Remove:
		out = dropDomain(out, c.Domain)
	case Add:
		ttl := c.TTLSeconds
		if ttl <= 0 {
			ttl = DefaultTTLSeconds
		}
		rec := Record{
			Address:    DefaultAddress,
			Domain:     c.Domain,
			CreatedAt:  now,
			TTLSeconds: ttl,
		}
		out = upsert(out, rec)
	}

	return Document{Lines: out}
}

// sameDomain compares host names case-insensitively.
func sameDomain(a, b string) bool {
	return strings.EqualFold(a, b)
}

func dropDomain(lines []Line, domain string) []Line {
	out := lines[:0]
	for _, ln := range lines {
		if m, ok := ln.(Managed); ok && sameDomain(m.Record.Domain, domain) {
			continue
		}
		out = append(out, ln)
	}
	return out
}

// upsert replaces the first managed line for the record's domain in place,
// keeping its terminator, and drops any later duplicates. With no match the
// record appends at the end.
func upsert(lines []Line, rec Record) []Line {
	replaced := false
	out := lines[:0]
	for _, ln := range lines {
		m, ok := ln.(Managed)
		if !ok || !sameDomain(m.Record.Domain, rec.Domain) {
			out = append(out, ln)
			continue
		}
		if replaced {
			continue
		}
		out = append(out, NewManaged(rec, m.End))
		replaced = true
	}
	if replaced {
		return out
	}
	return appendRecord(out, rec)
}

// appendRecord adds a new managed line at the end, preserving the file's
// trailing-newline style: a final unterminated line gains a "\n" and the new
// line takes over the unterminated slot.
func appendRecord(lines []Line, rec Record) []Line {
	end := "\n"
	if n := len(lines); n > 0 && lines[n-1].Terminator() == "" {
		lines[n-1] = withTerminator(lines[n-1], "\n")
		end = ""
	}
	return append(lines, NewManaged(rec, end))
}

func withTerminator(ln Line, end string) Line {
	switch v := ln.(type) {
	case Foreign:
		v.End = end
		return v
	case Managed:
		v.End = end
		return v
	}
	return ln
}
