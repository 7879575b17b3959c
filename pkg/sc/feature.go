package sc

import (
	"fmt"

	"github.com/seagrayinc/sc-hid/pkg/hid"
)

// Feature report payloads captured from the Steam client. They are
// opaque firmware commands; no structure is ascribed to them.
var (
	disableEmulationSeq = [][]byte{
		{0x81},
		{0x87, 0x03, 0x08, 0x07, 0x00},
	}
	enableEmulationSeq = []byte{0x81}
)

// DisableEmulation switches the controller out of its built-in
// keyboard/mouse emulation so the vendor interface delivers raw input
// frames. The writes must land in order; the first failure aborts.
func DisableEmulation(d hid.Device) error {
	for _, p := range disableEmulationSeq {
		if _, err := d.SendFeatureReport(p); err != nil {
			return fmt.Errorf("%w: %v", ErrModeToggleFailed, err)
		}
	}
	return nil
}

// EnableEmulation hands input back to the firmware emulation.
func EnableEmulation(d hid.Device) error {
	if _, err := d.SendFeatureReport(enableEmulationSeq); err != nil {
		return fmt.Errorf("%w: %v", ErrModeToggleFailed, err)
	}
	return nil
}
