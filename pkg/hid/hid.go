package hid

import "time"

// Device is an open HID interface handle capable of report I/O.
type Device interface {
	// Read blocks until an input report arrives.
	Read(p []byte) (int, error)
	// ReadTimeout reads one input report, waiting at most d. It returns
	// (0, nil) when nothing arrived before the deadline.
	ReadTimeout(p []byte, d time.Duration) (int, error)
	SendFeatureReport(p []byte) (int, error)
	Close() error
}

// Info describes one HID interface as reported by the OS. A physical
// device exposing several interfaces yields one Info per interface.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Serial       string
	Product      string
	Manufacturer string
	UsagePage    uint16
	Usage        uint16
	Interface    int
}

// Manager enumerates and opens HID interfaces.
type Manager interface {
	List() ([]Info, error)
	Open(path string) (Device, error)
	Close() error
}

// NewManager returns the hidapi-backed HID manager.
func NewManager() (Manager, error) {
	return newManager()
}
