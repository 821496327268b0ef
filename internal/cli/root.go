package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/astromechza/eha/internal/buildinfo"
	"github.com/astromechza/eha/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	file   string
	dryRun bool
	debug  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:          "eha",
		Short:        "eha (etc-hosts-adder) manages temporary localhost names in the hosts file",
		Version:      buildinfo.String(),
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.Setup(logger.Config{Debug: flags.debug})
		},
	}

	cmd.PersistentFlags().StringVar(&flags.file, "file", "", "Operate on the given hosts file (default from config, else /etc/hosts)")
	cmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "Print the new content to stdout instead of writing the file")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Enable verbose logging to stderr")

	cmd.AddCommand(
		addCmd(flags),
		removeCmd(flags),
		pruneCmd(flags),
		listCmd(flags),
	)
	return cmd
}
