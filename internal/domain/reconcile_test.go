package domain

import (
	"strings"
	"testing"
)

const fixture = "# some leading comments followed by whitespace\n" +
	"\n" +
	"127.0.0.1   localhost\n" +
	"10.0.0.9    other.name\n" +
	"127.0.0.1\tfoo.local\t# eha created=100 ttl=50\n"

func TestApplySweepsBeforeEveryCommand(t *testing.T) {
	cmds := []Command{
		Add{Domain: "fresh.local"},
		Remove{Domain: "unrelated.local"},
		RemoveExpired{},
	}

	for _, cmd := range cmds {
		doc := Apply(Parse([]byte(fixture)), cmd, 150) // foo.local expires at 150
		for _, rec := range doc.Records() {
			if rec.ExpiresAt() <= 150 {
				t.Fatalf("%T: expired record %q survived", cmd, rec.Domain)
			}
		}
		if out := string(Render(doc)); strings.Contains(out, "foo.local") {
			t.Fatalf("%T: expected foo.local to be swept, got:\n%s", cmd, out)
		}
	}
}

func TestApplyRemoveExpiredKeepsLiveAndForeign(t *testing.T) {
	doc := Apply(Parse([]byte(fixture)), RemoveExpired{}, 120)

	want := fixture // foo.local still live at 120
	if got := string(Render(doc)); got != want {
		t.Fatalf("expected untouched render:\n%q\ngot:\n%q", want, got)
	}
}

func TestApplyRemoveIsIdempotent(t *testing.T) {
	doc := Parse([]byte(fixture))

	once := Apply(doc, Remove{Domain: "absent.local"}, 120)
	twice := Apply(once, Remove{Domain: "absent.local"}, 120)

	if string(Render(once)) != string(Render(twice)) {
		t.Fatalf("expected remove to be idempotent")
	}
}

func TestApplyRemoveMatchesCaseInsensitively(t *testing.T) {
	doc := Apply(Parse([]byte(fixture)), Remove{Domain: "FOO.LOCAL"}, 120)

	if len(doc.Records()) != 0 {
		t.Fatalf("expected managed record to be removed, got %+v", doc.Records())
	}
	if out := string(Render(doc)); !strings.Contains(out, "other.name") {
		t.Fatalf("expected foreign lines to be untouched, got:\n%s", out)
	}
}

func TestApplyAddAppendsAtEnd(t *testing.T) {
	doc := Apply(Parse([]byte(fixture)), Add{Domain: "thing.local", TTLSeconds: 60}, 120)

	want := fixture + "127.0.0.1\tthing.local\t# eha created=120 ttl=60\n"
	if got := string(Render(doc)); got != want {
		t.Fatalf("expected:\n%q\ngot:\n%q", want, got)
	}
}

func TestApplyAddReplacesInPlace(t *testing.T) {
	doc := Parse([]byte(fixture + "# trailer\n"))

	out := Apply(doc, Add{Domain: "foo.local", TTLSeconds: 600}, 120)

	recs := out.Records()
	if len(recs) != 1 {
		t.Fatalf("expected a single managed record, got %+v", recs)
	}
	if recs[0].CreatedAt != 120 || recs[0].TTLSeconds != 600 {
		t.Fatalf("expected refreshed metadata, got %+v", recs[0])
	}

	// Same sequence position: the managed line stays above the trailer.
	lines := strings.Split(string(Render(out)), "\n")
	if !strings.Contains(lines[4], "foo.local") {
		t.Fatalf("expected foo.local to keep its position, got %q", lines[4])
	}
	if lines[5] != "# trailer" {
		t.Fatalf("expected trailer to follow, got %q", lines[5])
	}
}

func TestApplyAddDropsDuplicateEntries(t *testing.T) {
	in := "127.0.0.1\tdup.local\t# eha created=100 ttl=9000\n" +
		"# spacer\n" +
		"127.0.0.1\tdup.local\t# eha created=100 ttl=9000\n"

	out := Apply(Parse([]byte(in)), Add{Domain: "dup.local", TTLSeconds: 60}, 120)

	if recs := out.Records(); len(recs) != 1 {
		t.Fatalf("expected a single record after add, got %+v", recs)
	}
}

func TestApplyAddDefaultTTL(t *testing.T) {
	out := Apply(Document{}, Add{Domain: "x.local"}, 120)

	recs := out.Records()
	if len(recs) != 1 || recs[0].TTLSeconds != DefaultTTLSeconds {
		t.Fatalf("expected default ttl %d, got %+v", DefaultTTLSeconds, recs)
	}
}

func TestApplyAddThenRemoveRestoresOriginal(t *testing.T) {
	orig := "127.0.0.1 localhost\n"

	doc := Parse([]byte(orig))
	doc = Apply(doc, Add{Domain: "x.local", TTLSeconds: 60}, 100)
	doc = Apply(doc, Remove{Domain: "x.local"}, 101)

	if got := string(Render(doc)); got != orig {
		t.Fatalf("expected original content back, got %q", got)
	}
}

func TestApplyAddPreservesMissingTrailingNewline(t *testing.T) {
	orig := "# header\n127.0.0.1 localhost" // no trailing newline

	out := string(Render(Apply(Parse([]byte(orig)), Add{Domain: "x.local", TTLSeconds: 60}, 100)))

	want := "# header\n127.0.0.1 localhost\n127.0.0.1\tx.local\t# eha created=100 ttl=60"
	if out != want {
		t.Fatalf("expected:\n%q\ngot:\n%q", want, out)
	}
}

func TestApplyAddToEmptyDocument(t *testing.T) {
	out := string(Render(Apply(Parse(nil), Add{Domain: "x.local", TTLSeconds: 60}, 100)))

	want := "127.0.0.1\tx.local\t# eha created=100 ttl=60\n"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestApplyNeverSweepsMalformedLines(t *testing.T) {
	in := "127.0.0.1\tbroken.local\t# eha created=soon ttl=60\n"

	out := string(Render(Apply(Parse([]byte(in)), RemoveExpired{}, 1<<40)))
	if out != in {
		t.Fatalf("expected malformed line to be orphaned, not swept; got %q", out)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	doc := Parse([]byte(fixture))
	before := string(Render(doc))

	_ = Apply(doc, Add{Domain: "foo.local", TTLSeconds: 60}, 120)
	_ = Apply(doc, Remove{Domain: "foo.local"}, 1<<40)

	if got := string(Render(doc)); got != before {
		t.Fatalf("expected input document to be unchanged, got %q", got)
	}
}
