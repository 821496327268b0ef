package cli

import (
	"github.com/spf13/cobra"

	"github.com/astromechza/eha/internal/domain"
)

func pruneCmd(flags *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "prune",
		Short: "Remove all expired aliases",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			rc, err := loadRunCtx(flags)
			if err != nil {
				return err
			}

			res, err := rc.apply().Execute(domain.RemoveExpired{})
			if err != nil {
				return err
			}
			return commit(flags, rc, res)
		},
	}
	return c
}
