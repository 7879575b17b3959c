package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/seagrayinc/sc-hid/internal/api"
	"github.com/seagrayinc/sc-hid/internal/log"
)

// Status reports whether this process holds a controller connection.
type Status struct{}

func (c *Status) Run(logger *slog.Logger, raw log.RawLogger) error {
	svc, cleanup, err := newService(logger, raw)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.Dispatch(context.Background(), "device/status", "")
	if err != nil {
		return err
	}

	var st api.StatusResponse
	if err := json.Unmarshal([]byte(out), &st); err != nil {
		return err
	}
	if st.Connected {
		fmt.Printf("connected: %s %s (%s)\n",
			st.Device.Medium, st.Device.Product, st.Device.Path)
		return nil
	}
	fmt.Println("not connected")
	return nil
}
