// Package sc implements the vendor HID protocol spoken by Valve's Steam
// Controller: discovery of the raw-input interface, the 64-byte input
// report format, and the feature commands that switch the firmware's
// built-in keyboard/mouse emulation on and off.
//
// The protocol is not publicly documented. Report offsets and command
// payloads come from captured wired traffic and community reverse
// engineering notes.
package sc

const (
	// ValveVID is Valve Corporation's USB vendor ID.
	ValveVID uint16 = 0x28DE

	// WiredPID identifies a controller attached directly over USB.
	WiredPID uint16 = 0x1102
	// WirelessPID identifies the wireless receiver. Each paired slot
	// shows up as its own HID interface with this product ID.
	WirelessPID uint16 = 0x1142

	// VendorUsagePage marks the raw-input vendor interface. The
	// controller also exposes generic keyboard/mouse interfaces that the
	// OS claims for itself; those must never be opened.
	VendorUsagePage uint16 = 0xFF00
)

// Medium is how a controller reaches the host.
type Medium string

const (
	Wired    Medium = "wired"
	Wireless Medium = "wireless"
)

func mediumForPID(pid uint16) (Medium, bool) {
	switch pid {
	case WiredPID:
		return Wired, true
	case WirelessPID:
		return Wireless, true
	}
	return "", false
}

// DeviceDescriptor identifies one usable controller interface.
type DeviceDescriptor struct {
	Path    string `json:"path"`
	Product string `json:"product"`
	Serial  string `json:"serial"`
	Medium  Medium `json:"medium"`
}
