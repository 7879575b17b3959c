package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/seagrayinc/sc-hid/internal/log"
	"github.com/seagrayinc/sc-hid/internal/usbprobe"
	"github.com/seagrayinc/sc-hid/pkg/hid"
	"github.com/seagrayinc/sc-hid/pkg/sc"
)

func respond(res *Response, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	res.JSON = string(b)
	return nil
}

func decodePayload(payload string, v any) error {
	if payload == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return &Error{Kind: KindBadRequest, Detail: "bad payload: " + err.Error()}
	}
	return nil
}

func infoToWire(in hid.Info) InterfaceInfo {
	return InterfaceInfo{
		Path:         in.Path,
		VendorID:     in.VendorID,
		ProductID:    in.ProductID,
		Product:      in.Product,
		Manufacturer: in.Manufacturer,
		Serial:       in.Serial,
		UsagePage:    in.UsagePage,
		Usage:        in.Usage,
		Interface:    in.Interface,
	}
}

// Ping answers liveness checks from the shell.
func Ping() HandlerFunc {
	return func(req *Request, res *Response, logger *slog.Logger) error {
		return respond(res, PingResponse{OK: true})
	}
}

// HIDList returns every HID interface the OS reports, unfiltered.
func HIDList(hm hid.Manager) HandlerFunc {
	return func(req *Request, res *Response, logger *slog.Logger) error {
		infos, err := sc.Interfaces(hm)
		if err != nil {
			return err
		}
		out := make([]InterfaceInfo, 0, len(infos))
		for _, in := range infos {
			out = append(out, infoToWire(in))
		}
		return respond(res, InterfaceListResponse{Interfaces: out})
	}
}

// HIDVendor returns the interfaces carrying the controller vendor ID,
// including the emulation ones the OS claims.
func HIDVendor(hm hid.Manager) HandlerFunc {
	return func(req *Request, res *Response, logger *slog.Logger) error {
		infos, err := sc.VendorInterfaces(hm)
		if err != nil {
			return err
		}
		out := make([]InterfaceInfo, 0, len(infos))
		for _, in := range infos {
			out = append(out, infoToWire(in))
		}
		return respond(res, InterfaceListResponse{Interfaces: out})
	}
}

// DeviceList returns discovery results.
func DeviceList(hm hid.Manager) HandlerFunc {
	return func(req *Request, res *Response, logger *slog.Logger) error {
		return respond(res, DeviceListResponse{Devices: sc.Discover(hm)})
	}
}

// DeviceDetect reports the first usable controller. On a miss the
// response carries the raw-bus probe instead of an error.
func DeviceDetect(mgr *sc.Manager) HandlerFunc {
	return func(req *Request, res *Response, logger *slog.Logger) error {
		if d, ok := mgr.Detect(); ok {
			return respond(res, DetectResponse{Found: true, Device: &d})
		}
		p := usbprobe.Probe(sc.ValveVID)
		logger.Debug("controller not discoverable",
			slog.Int("bus_devices", p.BusDevices),
			slog.Int("hid_nodes", p.HIDNodes))
		return respond(res, DetectResponse{Found: false, Bus: &p})
	}
}

// DeviceConnect connects to the first discovered controller, or to the
// payload's path. Paths are resolved against discovery so only usable
// vendor interfaces are ever opened.
func DeviceConnect(mgr *sc.Manager, hm hid.Manager) HandlerFunc {
	return func(req *Request, res *Response, logger *slog.Logger) error {
		var creq ConnectRequest
		if err := decodePayload(req.Payload, &creq); err != nil {
			return err
		}

		var desc *sc.DeviceDescriptor
		if creq.Path != "" {
			for _, d := range sc.Discover(hm) {
				if d.Path == creq.Path {
					desc = &d
					break
				}
			}
			if desc == nil {
				return fmt.Errorf("%w: %s is not a usable controller interface", sc.ErrNotFound, creq.Path)
			}
		}

		d, err := mgr.Connect(desc)
		if err != nil {
			return err
		}
		return respond(res, ConnectResponse{Device: d})
	}
}

// DeviceDisconnect releases the controller. A mode-restore failure
// still surfaces even though the handle is closed by then.
func DeviceDisconnect(mgr *sc.Manager) HandlerFunc {
	return func(req *Request, res *Response, logger *slog.Logger) error {
		if err := mgr.Disconnect(); err != nil {
			return err
		}
		return respond(res, DisconnectResponse{Disconnected: true})
	}
}

// DeviceStatus reports the connection state without touching the
// device.
func DeviceStatus(mgr *sc.Manager) HandlerFunc {
	return func(req *Request, res *Response, logger *slog.Logger) error {
		d, ok := mgr.Status()
		out := StatusResponse{Connected: ok}
		if ok {
			out.Device = &d
		}
		return respond(res, out)
	}
}

// InputRead returns one decoded snapshot. An idle poll is HasData=false,
// never an error; a blocking read that expires is a real read_timeout.
func InputRead(mgr *sc.Manager) HandlerFunc {
	return func(req *Request, res *Response, logger *slog.Logger) error {
		var rreq InputReadRequest
		if err := decodePayload(req.Payload, &rreq); err != nil {
			return err
		}

		var (
			snap sc.InputSnapshot
			err  error
		)
		if rreq.Blocking {
			snap, err = mgr.ReadInputBlocking(time.Duration(rreq.TimeoutMs) * time.Millisecond)
		} else {
			snap, err = mgr.ReadInput()
		}
		if errors.Is(err, sc.ErrNoData) {
			return respond(res, InputResponse{HasData: false})
		}
		if err != nil {
			return err
		}
		return respond(res, InputResponse{HasData: true, Input: &snap})
	}
}

// InputRaw returns one frame as a hex dump for protocol diagnostics.
// Every frame that comes back is also mirrored to the raw frame log.
func InputRaw(mgr *sc.Manager, raw log.RawLogger) HandlerFunc {
	return func(req *Request, res *Response, logger *slog.Logger) error {
		frame, err := mgr.ReadRaw()
		if errors.Is(err, sc.ErrNoData) {
			return respond(res, RawInputResponse{HasData: false})
		}
		if err != nil {
			return err
		}
		raw.Frame(frame)
		return respond(res, RawInputResponse{
			HasData: true,
			Size:    len(frame),
			Hex:     sc.FormatReport(frame),
		})
	}
}
