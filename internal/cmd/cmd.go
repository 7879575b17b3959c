// Package cmd implements the scctl subcommands. Every device-facing
// command talks to the controller through the api command surface, the
// same boundary an embedding UI shell would use.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/seagrayinc/sc-hid/internal/api"
	"github.com/seagrayinc/sc-hid/internal/log"
	"github.com/seagrayinc/sc-hid/pkg/hid"
	"github.com/seagrayinc/sc-hid/pkg/sc"
)

// newService wires the HID backend, the controller manager and the
// command surface for one CLI invocation. The returned cleanup releases
// the controller and the backend.
func newService(logger *slog.Logger, raw log.RawLogger) (*api.Service, func(), error) {
	hm, err := hid.NewManager()
	if err != nil {
		return nil, nil, fmt.Errorf("hid backend init: %w", err)
	}
	mgr := sc.NewManager(hm)
	cleanup := func() {
		if err := mgr.Disconnect(); err != nil {
			logger.Warn("disconnect on shutdown", "error", err)
		}
		if err := hm.Close(); err != nil {
			logger.Debug("hid backend close", "error", err)
		}
	}
	return api.New(mgr, hm, logger, raw), cleanup, nil
}
