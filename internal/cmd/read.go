package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/seagrayinc/sc-hid/internal/api"
	"github.com/seagrayinc/sc-hid/internal/log"
)

// Read connects, reads a single input snapshot and disconnects. The
// snapshot is printed as JSON.
type Read struct {
	Blocking bool          `help:"Wait for a frame instead of a single poll"`
	Timeout  time.Duration `help:"Blocking read timeout" default:"1s"`
}

func (c *Read) Run(logger *slog.Logger, raw log.RawLogger) error {
	svc, cleanup, err := newService(logger, raw)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()
	if _, err := svc.Dispatch(ctx, "device/connect", ""); err != nil {
		return err
	}

	payload := ""
	if c.Blocking {
		b, err := json.Marshal(api.InputReadRequest{
			Blocking:  true,
			TimeoutMs: int(c.Timeout.Milliseconds()),
		})
		if err != nil {
			return err
		}
		payload = string(b)
	}

	out, err := svc.Dispatch(ctx, "input/read", payload)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
