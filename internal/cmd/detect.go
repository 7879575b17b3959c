package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/seagrayinc/sc-hid/internal/api"
	"github.com/seagrayinc/sc-hid/internal/log"
)

// Detect checks for a usable controller. When discovery comes up empty
// the raw USB probe result is shown so a present-but-unusable device
// can be told apart from an absent one.
type Detect struct{}

func (c *Detect) Run(logger *slog.Logger, raw log.RawLogger) error {
	svc, cleanup, err := newService(logger, raw)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.Dispatch(context.Background(), "device/detect", "")
	if err != nil {
		return err
	}

	var det api.DetectResponse
	if err := json.Unmarshal([]byte(out), &det); err != nil {
		return err
	}
	if det.Found {
		fmt.Printf("controller present: %s %s (%s)\n",
			det.Device.Medium, det.Device.Product, det.Device.Path)
		return nil
	}

	fmt.Println("no controller found")
	if det.Bus != nil {
		fmt.Printf("usb probe: %d bus device(s), %d hid node(s) with the Valve vendor id\n",
			det.Bus.BusDevices, det.Bus.HIDNodes)
	}
	return nil
}
