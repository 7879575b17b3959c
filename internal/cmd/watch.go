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
	"github.com/seagrayinc/sc-hid/internal/log"
)

// Watch connects and streams input until interrupted. Idle polls are
// skipped silently; each snapshot is printed as one JSON line.
type Watch struct {
	Interval time.Duration `help:"Poll interval between snapshot reads" default:"16ms"`
	Raw      bool          `help:"Print raw frames as hex instead of decoded snapshots"`
	Timeout  time.Duration `help:"Use blocking reads with this timeout instead of plain polls"`
}

func (c *Watch) Run(logger *slog.Logger, raw log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, cleanup, err := newService(logger, raw)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := svc.Dispatch(ctx, "device/connect", ""); err != nil {
		return err
	}
	logger.Info("streaming input", "interval", c.Interval, "raw", c.Raw)

	op := "input/read"
	payload := ""
	if c.Raw {
		op = "input/raw"
	} else if c.Timeout > 0 {
		b, err := json.Marshal(api.InputReadRequest{
			Blocking:  true,
			TimeoutMs: int(c.Timeout.Milliseconds()),
		})
		if err != nil {
			return err
		}
		payload = string(b)
	}

	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	var frames uint64
	for {
		select {
		case <-ctx.Done():
			logger.Info("watch stopped", "frames", frames)
			return nil
		case <-ticker.C:
		}

		out, err := svc.Dispatch(ctx, op, payload)
		if err != nil {
			var apiErr *api.Error
			if errors.As(err, &apiErr) && apiErr.Kind == api.KindReadTimeout {
				continue
			}
			return err
		}

		var probe struct {
			HasData bool `json:"has_data"`
		}
		if err := json.Unmarshal([]byte(out), &probe); err != nil {
			return err
		}
		if !probe.HasData {
			continue
		}
		frames++
		fmt.Println(out)
	}
}
