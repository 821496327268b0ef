package usecase

import (
	"log/slog"
	"strings"
	"time"

	"github.com/astromechza/eha/internal/domain"
	"github.com/astromechza/eha/internal/ports"
)

// ApplyCommand runs one reconciliation against the hosts file: read the
// whole file, parse, apply the command, render. Writing or printing the
// result stays with the caller, which owns the write-safety policy.
//
// There is no locking here: a concurrent external writer between read and
// write is a lost-update race this tool does not try to detect.
type ApplyCommand struct {
	store ports.HostsStore
	now   func() time.Time
	log   *slog.Logger
}

// Option configures ApplyCommand.
type Option func(*ApplyCommand)

// WithNow overrides the clock (useful for tests).
func WithNow(now func() time.Time) Option {
	return func(uc *ApplyCommand) { uc.now = now }
}

// WithLogger overrides the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(uc *ApplyCommand) { uc.log = l }
}

func NewApplyCommand(store ports.HostsStore, opts ...Option) *ApplyCommand {
	uc := &ApplyCommand{
		store: store,
		now:   time.Now,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Result carries the rendered file plus a summary of what changed.
type Result struct {
	Output []byte

	// Swept lists domains dropped by the expiry sweep that precedes every
	// command.
	Swept []string
	// Removed lists live domains dropped by a Remove command.
	Removed []string
	// Added is set for an Add command to the record as written.
	Added *domain.Record
}

func (uc *ApplyCommand) Execute(cmd domain.Command) (Result, error) {
	b, err := uc.store.Read()
	if err != nil {
		return Result{}, err
	}

	doc := domain.Parse(b)
	now := uc.now().Unix()

	var res Result
	for _, rec := range doc.Records() {
		if rec.Expired(now) {
			res.Swept = append(res.Swept, rec.Domain)
		}
	}
	if c, ok := cmd.(domain.Remove); ok {
		for _, rec := range doc.Records() {
			if !rec.Expired(now) && strings.EqualFold(rec.Domain, c.Domain) {
				res.Removed = append(res.Removed, rec.Domain)
			}
		}
	}

	out := domain.Apply(doc, cmd, now)

	if c, ok := cmd.(domain.Add); ok {
		for _, rec := range out.Records() {
			if strings.EqualFold(rec.Domain, c.Domain) {
				r := rec
				res.Added = &r
				break
			}
		}
	}
	res.Output = domain.Render(out)

	uc.log.Info("hosts.reconciled",
		"lines", len(doc.Lines),
		"records", len(doc.Records()),
		"swept", len(res.Swept),
		"removed", len(res.Removed),
		"added", res.Added != nil,
	)

	return res, nil
}
