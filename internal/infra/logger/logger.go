package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

type Config struct {
	Debug bool
	Out   io.Writer // defaults to os.Stderr
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Setup installs the process-wide logger. eha is a short-lived CLI that may
// write its result to stdout, so diagnostics always go to stderr.
func Setup(cfg Config) {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	l := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))

	mu.Lock()
	global = l
	mu.Unlock()
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
