package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/astromechza/eha/internal/domain"
	"github.com/astromechza/eha/internal/ui/tui"
)

func listCmd(flags *rootFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List managed aliases and their expiry status (read-only)",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			rc, err := loadRunCtx(flags)
			if err != nil {
				return err
			}

			b, err := rc.store.Read()
			if err != nil {
				return err
			}

			entries := toEntries(domain.Parse(b).Records(), time.Now().Unix())
			return printEntries(os.Stdout, rc.store.Path(), entries, format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

type listEntry struct {
	Domain     string `json:"domain"`
	Address    string `json:"address"`
	CreatedAt  int64  `json:"created_at"`
	TTLSeconds int64  `json:"ttl_seconds"`
	ExpiresAt  int64  `json:"expires_at"`
	Expired    bool   `json:"expired"`
}

func toEntries(records []domain.Record, now int64) []listEntry {
	out := make([]listEntry, 0, len(records))
	for _, rec := range records {
		out = append(out, listEntry{
			Domain:     rec.Domain,
			Address:    rec.Address,
			CreatedAt:  rec.CreatedAt,
			TTLSeconds: rec.TTLSeconds,
			ExpiresAt:  rec.ExpiresAt(),
			Expired:    rec.Expired(now),
		})
	}
	return out
}

func printEntries(w io.Writer, path string, entries []listEntry, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"file":    path,
			"entries": entries,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyEntries(w, path, entries)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyEntries(w io.Writer, path string, entries []listEntry) {
	theme := tui.DefaultTheme()

	fmt.Fprintln(w, theme.Title.Render(fmt.Sprintf("Managed entries in %s", path)))
	if len(entries) == 0 {
		fmt.Fprintln(w, theme.Help.Render("(none)"))
		return
	}

	now := time.Now().Unix()
	for _, e := range entries {
		line := fmt.Sprintf("- %s -> %s (%s)", e.Domain, e.Address, expiryPhrase(e, now))
		if e.Expired {
			line = theme.Expired.Render(line)
		}
		fmt.Fprintln(w, line)
	}
}

func expiryPhrase(e listEntry, now int64) string {
	d := time.Duration(e.ExpiresAt-now) * time.Second
	if e.Expired {
		return fmt.Sprintf("expired %s ago", -d)
	}
	return fmt.Sprintf("expires in %s", d)
}
