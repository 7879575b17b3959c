// Package log wires slog for the CLI: level parsing with an extra trace
// level, console/file fan-out, and a raw frame logger for protocol
// captures.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelTrace sits below debug for per-frame output.
const LevelTrace slog.Level = -8

// ParseLevel maps a config string to a slog level. Unknown strings fall
// back to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// tee fans each record out to every handler.
type tee struct{ hs []slog.Handler }

func (t tee) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t tee) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range t.hs {
		_ = h.Handle(ctx, r)
	}
	return nil
}

func (t tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(t.hs))
	for i, h := range t.hs {
		out[i] = h.WithAttrs(attrs)
	}
	return tee{hs: out}
}

func (t tee) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(t.hs))
	for i, h := range t.hs {
		out[i] = h.WithGroup(name)
	}
	return tee{hs: out}
}

// band passes only the levels its predicate accepts.
type band struct {
	pass func(slog.Level) bool
	h    slog.Handler
}

func (b band) Enabled(ctx context.Context, level slog.Level) bool {
	return b.pass(level) && b.h.Enabled(ctx, level)
}

func (b band) Handle(ctx context.Context, r slog.Record) error {
	if !b.pass(r.Level) {
		return nil
	}
	return b.h.Handle(ctx, r)
}

func (b band) WithAttrs(attrs []slog.Attr) slog.Handler {
	return band{pass: b.pass, h: b.h.WithAttrs(attrs)}
}

func (b band) WithGroup(name string) slog.Handler {
	return band{pass: b.pass, h: b.h.WithGroup(name)}
}

// Setup builds the process logger and installs it as the slog default,
// so library packages that log through the package-level functions pick
// it up too. Without a file, non-error records go to stdout and errors
// to stderr; with a file, the console collapses to stderr and the file
// receives everything at the configured level.
func Setup(level, file string) (*slog.Logger, []io.Closer, error) {
	lv := ParseLevel(level)
	var handlers []slog.Handler

	if file == "" {
		out := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lv})
		handlers = append(handlers, band{pass: func(l slog.Level) bool { return l < slog.LevelError }, h: out})
		errOut := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})
		handlers = append(handlers, band{pass: func(l slog.Level) bool { return l >= slog.LevelError }, h: errOut})
	} else {
		handlers = append(handlers, slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv}))
	}

	var closers []io.Closer
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, f)
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: lv}))
	}

	logger := slog.New(tee{hs: handlers})
	slog.SetDefault(logger)
	return logger, closers, nil
}
