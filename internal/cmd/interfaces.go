package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/seagrayinc/sc-hid/internal/api"
	"github.com/seagrayinc/sc-hid/internal/log"
)

// Interfaces lists HID interfaces for troubleshooting. By default only
// interfaces carrying the Valve vendor ID are shown; --all lists
// everything the OS reports.
type Interfaces struct {
	All bool `help:"List every HID interface, not just Valve ones"`
}

func (c *Interfaces) Run(logger *slog.Logger, raw log.RawLogger) error {
	svc, cleanup, err := newService(logger, raw)
	if err != nil {
		return err
	}
	defer cleanup()

	op := "hid/vendor"
	if c.All {
		op = "hid/list"
	}
	out, err := svc.Dispatch(context.Background(), op, "")
	if err != nil {
		return err
	}

	var list api.InterfaceListResponse
	if err := json.Unmarshal([]byte(out), &list); err != nil {
		return err
	}
	if len(list.Interfaces) == 0 {
		fmt.Println("no matching HID interfaces")
		return nil
	}
	for _, in := range list.Interfaces {
		fmt.Printf("%04x:%04x usage=%04x/%02x iface=%-2d %-24s %s\n",
			in.VendorID, in.ProductID, in.UsagePage, in.Usage, in.Interface, in.Product, in.Path)
	}
	return nil
}
