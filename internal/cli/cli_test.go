package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestValidateName(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"simple local", "demo.local", false},
		{"simple localhost", "demo.localhost", false},
		{"nested labels", "a.b-c.demo.local", false},
		{"wrong suffix", "demo.example", true},
		{"bare suffix", ".local", true},
		{"empty label", "a..local", true},
		{"leading dash", "-a.local", true},
		{"trailing dash", "a-.local", true},
		{"bad char", "a_b.local", true},
		{"label too long", strings.Repeat("a", 64) + ".local", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateName(tc.in)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for %q", tc.in)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.in, err)
			}
		})
	}
}

func TestValidateTTL(t *testing.T) {
	cases := []struct {
		name    string
		in      time.Duration
		wantErr bool
	}{
		{"one minute", time.Minute, false},
		{"one day", 24 * time.Hour, false},
		{"one year", 365 * 24 * time.Hour, false},
		{"below minimum", 59 * time.Second, true},
		{"above maximum", 366 * 24 * time.Hour, true},
		{"zero", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateTTL(tc.in)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for %s", tc.in)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error for %s: %v", tc.in, err)
			}
		})
	}
}

func TestPrintEntriesJSON(t *testing.T) {
	entries := []listEntry{
		{Domain: "demo.local", Address: "127.0.0.1", CreatedAt: 100, TTLSeconds: 60, ExpiresAt: 160},
	}

	var buf bytes.Buffer
	if err := printEntries(&buf, "/etc/hosts", entries, "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload struct {
		File    string      `json:"file"`
		Entries []listEntry `json:"entries"`
	}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json output: %v", err)
	}
	if payload.File != "/etc/hosts" || len(payload.Entries) != 1 || payload.Entries[0].Domain != "demo.local" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestPrintEntriesUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := printEntries(&buf, "/etc/hosts", nil, "xml"); err == nil {
		t.Fatalf("expected an error for unsupported format")
	}
}

func TestPrintEntriesPretty(t *testing.T) {
	entries := []listEntry{
		{Domain: "demo.local", Address: "127.0.0.1", ExpiresAt: time.Now().Unix() + 3600},
	}

	var buf bytes.Buffer
	if err := printEntries(&buf, "/etc/hosts", entries, "pretty"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "demo.local") {
		t.Fatalf("expected entry in output, got %q", buf.String())
	}
}
