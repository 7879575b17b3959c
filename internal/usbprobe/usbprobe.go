// Package usbprobe answers one troubleshooting question: is the
// hardware visible to the host at all, even when HID discovery finds no
// usable vendor interface?
//
// Two independent views are consulted: a libusb bus scan and a pure-Go
// walk of the OS HID nodes. Comparing them narrows the failure down to
// missing driver, permissions, or absent hardware.
package usbprobe

import (
	"log/slog"

	"github.com/karalabe/usb"
	usbhid "rafaelmartins.com/p/usbhid"
)

// Presence is the per-layer visibility of a vendor's hardware.
type Presence struct {
	// BusDevices counts raw USB bus matches (libusb view).
	BusDevices int `json:"bus_devices"`
	// HIDNodes counts OS HID node matches (hidraw view).
	HIDNodes int `json:"hid_nodes"`
}

// Seen reports whether any layer saw the hardware.
func (p Presence) Seen() bool { return p.BusDevices > 0 || p.HIDNodes > 0 }

// Probe counts devices carrying vid on each layer. A layer that cannot
// be scanned counts as zero visibility; probing is diagnostic and never
// fails the caller.
func Probe(vid uint16) Presence {
	var p Presence

	if infos, err := usb.Enumerate(vid, 0); err == nil {
		p.BusDevices = len(infos)
	} else {
		slog.Debug("usb bus scan unavailable", slog.Any("error", err))
	}

	devs, err := usbhid.Enumerate(func(d *usbhid.Device) bool {
		return d.VendorId() == vid
	})
	if err == nil {
		p.HIDNodes = len(devs)
	} else {
		slog.Debug("hid node scan unavailable", slog.Any("error", err))
	}

	return p
}
