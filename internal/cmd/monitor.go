package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/seagrayinc/sc-hid/internal/api"
	"github.com/seagrayinc/sc-hid/internal/hotplug"
	"github.com/seagrayinc/sc-hid/internal/log"
	"github.com/seagrayinc/sc-hid/pkg/sc"
)

// Monitor reports controller arrival and removal. Device node events
// trigger rescans between the periodic ones, so hotplug shows up
// within the debounce window rather than the poll interval.
type Monitor struct {
	Interval time.Duration `help:"Periodic rescan interval" default:"2s"`
}

func (c *Monitor) Run(logger *slog.Logger, raw log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, cleanup, err := newService(logger, raw)
	if err != nil {
		return err
	}
	defer cleanup()

	w := hotplug.New(c.Interval)
	go func() {
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("hotplug watcher stopped", "error", err)
		}
	}()

	known := map[string]sc.DeviceDescriptor{}
	rescan := func() {
		out, err := svc.Dispatch(ctx, "device/list", "")
		if err != nil {
			logger.Warn("rescan failed", "error", err)
			return
		}
		var list api.DeviceListResponse
		if err := json.Unmarshal([]byte(out), &list); err != nil {
			logger.Warn("rescan failed", "error", err)
			return
		}

		seen := map[string]sc.DeviceDescriptor{}
		for _, d := range list.Devices {
			seen[d.Path] = d
			if _, ok := known[d.Path]; !ok {
				fmt.Printf("%s attached %s %s (%s)\n",
					time.Now().Format("15:04:05"), d.Medium, d.Product, d.Path)
			}
		}
		for path, d := range known {
			if _, ok := seen[path]; !ok {
				fmt.Printf("%s removed  %s %s (%s)\n",
					time.Now().Format("15:04:05"), d.Medium, d.Product, path)
			}
		}
		known = seen
	}

	logger.Info("monitoring for controller hotplug events", "interval", c.Interval)
	rescan()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.Ticks():
			rescan()
		}
	}
}
