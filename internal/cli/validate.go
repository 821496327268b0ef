package cli

import (
	"fmt"
	"strings"
	"time"
)

// TTL bounds carried over from the original minute-based flag: one minute up
// to a year.
const (
	minTTL = time.Minute
	maxTTL = 365 * 24 * time.Hour
)

func validateTTL(d time.Duration) error {
	if d < minTTL || d > maxTTL {
		return fmt.Errorf("ttl must be between %s and %s (inclusive)", minTTL, maxTTL)
	}
	return nil
}

// validateName enforces the naming convention before anything touches the
// file: names must end in .local or .localhost and each label must be a
// plain LDH label. The core itself treats domains as opaque strings.
func validateName(name string) error {
	if !strings.HasSuffix(name, ".local") && !strings.HasSuffix(name, ".localhost") {
		return fmt.Errorf("name must end in .local or .localhost")
	}

	for i, label := range strings.Split(name, ".") {
		if label == "" {
			return fmt.Errorf("invalid DNS name part #%d: cannot be empty", i)
		}
		if len(label) > 63 {
			return fmt.Errorf("invalid DNS name part #%d: longer than 63 characters", i)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("invalid DNS name part #%d: cannot start or end with '-'", i)
		}
		for j := 0; j < len(label); j++ {
			if c := label[j]; !isLDHChar(c) {
				return fmt.Errorf("invalid DNS name char in part #%d @ %d: %q", i, j, string(c))
			}
		}
	}
	return nil
}

func isLDHChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-':
		return true
	}
	return false
}
