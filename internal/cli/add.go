package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/astromechza/eha/internal/domain"
)

func addCmd(flags *rootFlags) *cobra.Command {
	var ttl time.Duration

	c := &cobra.Command{
		Use:   "add <name>",
		Short: "Add or refresh a temporary localhost alias ending in .local or .localhost",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := validateName(name); err != nil {
				return err
			}

			rc, err := loadRunCtx(flags)
			if err != nil {
				return err
			}

			effective := ttl
			if !cmd.Flags().Changed("ttl") {
				effective = rc.cfg.Defaults.TTL
			}
			if err := validateTTL(effective); err != nil {
				return err
			}

			res, err := rc.apply().Execute(domain.Add{
				Domain:     name,
				TTLSeconds: int64(effective / time.Second),
			})
			if err != nil {
				return err
			}
			return commit(flags, rc, res)
		},
	}

	c.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Time to live, after which the entry is subject to removal")
	return c
}
