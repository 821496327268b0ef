package cli

import (
	"os"
	"strings"

	"github.com/astromechza/eha/internal/domain"
	"github.com/astromechza/eha/internal/infra/config"
	"github.com/astromechza/eha/internal/infra/hostsfile"
	"github.com/astromechza/eha/internal/infra/logger"
	"github.com/astromechza/eha/internal/usecase"
)

// runCtx bundles the resolved configuration with the store for the target
// hosts file. It is rebuilt on every invocation; the file is the only
// durable state.
type runCtx struct {
	cfg   domain.Config
	store *hostsfile.Store
}

func loadRunCtx(flags *rootFlags) (*runCtx, error) {
	cfg := domain.DefaultConfig()

	if path, err := config.DefaultPath(); err == nil {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	target := cfg.HostsFile
	if f := strings.TrimSpace(flags.file); f != "" {
		target = f
	}

	return &runCtx{
		cfg:   cfg,
		store: hostsfile.NewStore(target),
	}, nil
}

func (rc *runCtx) apply() *usecase.ApplyCommand {
	return usecase.NewApplyCommand(rc.store, usecase.WithLogger(logger.L()))
}

// commit writes the reconciled bytes back, or prints them in dry-run mode.
func commit(flags *rootFlags, rc *runCtx, res usecase.Result) error {
	if flags.dryRun {
		_, err := os.Stdout.Write(res.Output)
		return err
	}
	return rc.store.Write(res.Output)
}
