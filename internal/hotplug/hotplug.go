// Package hotplug notices device node churn. It combines a debounced
// fsnotify watch on the node directories with a periodic rescan ticker,
// since node events alone are not reliable across platforms.
package hotplug

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 500 * time.Millisecond

var defaultDirs = []string{"/dev", "/dev/input"}

// Watcher coalesces node churn into rescan ticks.
type Watcher struct {
	ticks    chan struct{}
	interval time.Duration
	dirs     []string
	filter   bool
}

// New returns a Watcher rescanning at least every interval. Extra dirs
// override the default watch set (useful in tests).
func New(interval time.Duration, dirs ...string) *Watcher {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	custom := len(dirs) > 0
	if !custom {
		dirs = defaultDirs
	}
	return &Watcher{
		ticks:    make(chan struct{}, 1),
		interval: interval,
		dirs:     dirs,
		filter:   !custom,
	}
}

// Ticks delivers one element per pending rescan. Bursts coalesce into a
// single tick.
func (w *Watcher) Ticks() <-chan struct{} { return w.ticks }

// Run watches until ctx is done. When fsnotify is unavailable the
// watcher degrades to pure interval ticking.
func (w *Watcher) Run(ctx context.Context) error {
	var (
		events <-chan fsnotify.Event
		errs   <-chan error
	)
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Debug("fsnotify unavailable, polling only", slog.Any("error", err))
	} else {
		defer fsw.Close()
		for _, dir := range w.dirs {
			if _, err := os.Stat(dir); err != nil {
				continue
			}
			if err := fsw.Add(dir); err != nil {
				slog.Debug("watch failed", slog.String("dir", dir), slog.Any("error", err))
			}
		}
		events = fsw.Events
		errs = fsw.Errors
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			w.kick()

		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove) == 0 {
				continue
			}
			if !w.relevant(ev.Name) {
				continue
			}
			if !pending {
				pending = true
				timer.Reset(debounce)
			}

		case <-timer.C:
			if pending {
				pending = false
				w.kick()
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			slog.Debug("watch error", slog.Any("error", err))
		}
	}
}

// relevant keeps the watch quiet on unrelated /dev churn. Custom dirs
// (tests) pass everything through.
func (w *Watcher) relevant(name string) bool {
	if !w.filter {
		return true
	}
	return strings.Contains(name, "hidraw") || strings.Contains(name, "/dev/input/")
}

func (w *Watcher) kick() {
	select {
	case w.ticks <- struct{}{}:
	default:
	}
}
