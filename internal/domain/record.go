package domain

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// marker is the signature token identifying a line this tool owns. The
// metadata after it is plain decimal key=value pairs so the file alone is
// self-describing across invocations and machines.
const marker = "# eha "

const (
	// DefaultAddress is the loopback literal written for every alias.
	DefaultAddress = "127.0.0.1"

	// DefaultTTLSeconds is applied when the caller supplies no TTL.
	DefaultTTLSeconds int64 = 86400
)

// Record is one managed alias: a loopback address mapped to a local domain,
// stamped with its creation time and TTL.
type Record struct {
	Address    string
	Domain     string
	CreatedAt  int64 // unix seconds
	TTLSeconds int64
}

// ExpiresAt returns the unix second at which the record becomes eligible for
// cleanup.
func (r Record) ExpiresAt() int64 {
	return r.CreatedAt + r.TTLSeconds
}

// Expired reports whether the record should be swept at the given time.
func (r Record) Expired(now int64) bool {
	return now >= r.ExpiresAt()
}

// EncodeRecord renders a Record to its canonical single-line form. Encoding
// is deterministic so diffs against version-controlled hosts files stay
// minimal.
func EncodeRecord(r Record) string {
	return fmt.Sprintf("%s\t%s\t%screated=%d ttl=%d", r.Address, r.Domain, marker, r.CreatedAt, r.TTLSeconds)
}

// DecodeRecord parses the textual form of a managed line. The line must hold
// an address and a domain before the marker, and both created and ttl as
// non-negative decimals after it. Unknown key=value pairs after the marker
// are ignored so newer versions can extend the format.
//
// Failures wrap ErrMalformedRecord; callers demote such lines to foreign
// rather than aborting the parse.
func DecodeRecord(line string) (Record, error) {
	head, meta, found := strings.Cut(line, marker)
	if !found {
		return Record{}, malformed("no signature marker")
	}

	fields := strings.Fields(head)
	if len(fields) < 2 {
		return Record{}, malformed("expected address and domain before marker")
	}

	address := fields[0]
	if net.ParseIP(address) == nil {
		return Record{}, malformed(fmt.Sprintf("invalid address %q", address))
	}
	domain := fields[len(fields)-1]

	var created, ttl int64
	var haveCreated, haveTTL bool
	for _, tok := range strings.Fields(meta) {
		key, val, ok := strings.Cut(tok, "=")
		if !ok {
			return Record{}, malformed(fmt.Sprintf("metadata token %q is not key=value", tok))
		}

		switch key {
		case "created":
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil || n < 0 {
				return Record{}, malformed(fmt.Sprintf("invalid created %q", val))
			}
			created = n
			haveCreated = true
		case "ttl":
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil || n < 0 {
				return Record{}, malformed(fmt.Sprintf("invalid ttl %q", val))
			}
			ttl = n
			haveTTL = true
		default:
			// Unknown keys are tolerated but never re-emitted.
		}
	}
	if !haveCreated || !haveTTL {
		return Record{}, malformed("missing created or ttl metadata")
	}

	return Record{
		Address:    address,
		Domain:     domain,
		CreatedAt:  created,
		TTLSeconds: ttl,
	}, nil
}

func malformed(detail string) error {
	return &OpError{
		Op:   "record.decode",
		Kind: KindMalformedRecord,
		Err:  fmt.Errorf("%w: %s", ErrMalformedRecord, detail),
	}
}
