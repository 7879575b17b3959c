package api

import (
	"github.com/seagrayinc/sc-hid/internal/usbprobe"
	"github.com/seagrayinc/sc-hid/pkg/sc"
)

// Wire types for operation responses. Field names are part of the
// surface; shells on the other side of the boundary decode these.

type PingResponse struct {
	OK bool `json:"ok"`
}

// InterfaceInfo mirrors one OS HID interface for the diagnostics
// listings.
type InterfaceInfo struct {
	Path         string `json:"path"`
	VendorID     uint16 `json:"vendor_id"`
	ProductID    uint16 `json:"product_id"`
	Product      string `json:"product"`
	Manufacturer string `json:"manufacturer"`
	Serial       string `json:"serial"`
	UsagePage    uint16 `json:"usage_page"`
	Usage        uint16 `json:"usage"`
	Interface    int    `json:"interface"`
}

type InterfaceListResponse struct {
	Interfaces []InterfaceInfo `json:"interfaces"`
}

type DeviceListResponse struct {
	Devices []sc.DeviceDescriptor `json:"devices"`
}

// DetectResponse reports the first usable controller. When none is
// found, Bus carries the raw-visibility probe so a shell can hint at
// driver or permission problems instead of a bare "not found".
type DetectResponse struct {
	Found  bool                 `json:"found"`
	Device *sc.DeviceDescriptor `json:"device,omitempty"`
	Bus    *usbprobe.Presence   `json:"bus,omitempty"`
}

// ConnectRequest optionally pins the connect to one discovered path.
type ConnectRequest struct {
	Path string `json:"path,omitempty"`
}

type ConnectResponse struct {
	Device sc.DeviceDescriptor `json:"device"`
}

type DisconnectResponse struct {
	Disconnected bool `json:"disconnected"`
}

type StatusResponse struct {
	Connected bool                 `json:"connected"`
	Device    *sc.DeviceDescriptor `json:"device,omitempty"`
}

// InputReadRequest selects the read mode. The default is one
// non-blocking poll.
type InputReadRequest struct {
	Blocking  bool `json:"blocking,omitempty"`
	TimeoutMs int  `json:"timeout_ms,omitempty"`
}

// InputResponse carries one decoded snapshot. An idle poll is not an
// error: it comes back as HasData=false.
type InputResponse struct {
	HasData bool              `json:"has_data"`
	Input   *sc.InputSnapshot `json:"input,omitempty"`
}

// RawInputResponse carries one frame as a hex dump.
type RawInputResponse struct {
	HasData bool   `json:"has_data"`
	Size    int    `json:"size,omitempty"`
	Hex     string `json:"hex,omitempty"`
}
