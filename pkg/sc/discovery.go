package sc

import (
	"log/slog"

	"github.com/seagrayinc/sc-hid/pkg/hid"
)

// Discover returns a descriptor for every usable controller interface:
// vendor ID, a known product ID and the vendor usage page must all
// match. A wireless receiver yields one descriptor per paired slot,
// in enumeration order. Discovery never fails; enumeration errors
// produce an empty result.
func Discover(m hid.Manager) []DeviceDescriptor {
	infos, err := m.List()
	if err != nil {
		slog.Debug("hid enumeration failed", slog.Any("error", err))
		return nil
	}
	var out []DeviceDescriptor
	for _, in := range infos {
		if in.VendorID != ValveVID || in.UsagePage != VendorUsagePage {
			continue
		}
		medium, ok := mediumForPID(in.ProductID)
		if !ok {
			continue
		}
		out = append(out, DeviceDescriptor{
			Path:    in.Path,
			Product: in.Product,
			Serial:  in.Serial,
			Medium:  medium,
		})
	}
	return out
}

// Interfaces returns the unfiltered OS view of every HID interface.
// Diagnostic only; nothing about the result is contractual.
func Interfaces(m hid.Manager) ([]hid.Info, error) {
	return m.List()
}

// VendorInterfaces returns every interface carrying Valve's vendor ID,
// including the emulation interfaces the OS claims for itself. Useful
// for seeing what the OS exposes when Discover comes back empty.
func VendorInterfaces(m hid.Manager) ([]hid.Info, error) {
	infos, err := m.List()
	if err != nil {
		return nil, err
	}
	var out []hid.Info
	for _, in := range infos {
		if in.VendorID == ValveVID {
			out = append(out, in)
		}
	}
	return out, nil
}
