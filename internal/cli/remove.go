package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/astromechza/eha/internal/domain"
	"github.com/astromechza/eha/internal/ui/tui"
)

func removeCmd(flags *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:     "remove [name]",
		Aliases: []string{"rm"},
		Short:   "Remove an alias; with no name, pick one interactively",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			rc, err := loadRunCtx(flags)
			if err != nil {
				return err
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				picked, ok, err := pickLiveDomain(rc)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				name = picked
			}

			res, err := rc.apply().Execute(domain.Remove{Domain: name})
			if err != nil {
				return err
			}
			return commit(flags, rc, res)
		},
	}
	return c
}

func pickLiveDomain(rc *runCtx) (string, bool, error) {
	b, err := rc.store.Read()
	if err != nil {
		return "", false, err
	}

	now := time.Now()
	var live []domain.Record
	for _, rec := range domain.Parse(b).Records() {
		if !rec.Expired(now.Unix()) {
			live = append(live, rec)
		}
	}
	if len(live) == 0 {
		return "", false, fmt.Errorf("no live managed entries in %s", rc.store.Path())
	}

	return tui.PickDomain(live, now)
}
