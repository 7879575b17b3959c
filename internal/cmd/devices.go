package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/seagrayinc/sc-hid/internal/api"
	"github.com/seagrayinc/sc-hid/internal/log"
)

// Devices lists every controller interface discovery accepts.
type Devices struct{}

func (c *Devices) Run(logger *slog.Logger, raw log.RawLogger) error {
	svc, cleanup, err := newService(logger, raw)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.Dispatch(context.Background(), "device/list", "")
	if err != nil {
		return err
	}

	var list api.DeviceListResponse
	if err := json.Unmarshal([]byte(out), &list); err != nil {
		return err
	}
	if len(list.Devices) == 0 {
		fmt.Println("no controllers found")
		return nil
	}
	for _, d := range list.Devices {
		fmt.Printf("%-9s %-28s serial=%-14s %s\n", d.Medium, d.Product, d.Serial, d.Path)
	}
	return nil
}
