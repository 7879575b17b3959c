package hid

import (
	"time"

	hidapi "github.com/sstallion/go-hid"
)

type hidapiManager struct{}

func newManager() (Manager, error) {
	if err := hidapi.Init(); err != nil {
		return nil, err
	}
	return &hidapiManager{}, nil
}

func (m *hidapiManager) List() ([]Info, error) {
	var out []Info
	err := hidapi.Enumerate(hidapi.VendorIDAny, hidapi.ProductIDAny, func(info *hidapi.DeviceInfo) error {
		out = append(out, Info{
			Path:         info.Path,
			VendorID:     info.VendorID,
			ProductID:    info.ProductID,
			Serial:       info.SerialNbr,
			Product:      info.ProductStr,
			Manufacturer: info.MfrStr,
			UsagePage:    info.UsagePage,
			Usage:        info.Usage,
			Interface:    info.InterfaceNbr,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (m *hidapiManager) Open(path string) (Device, error) {
	d, err := hidapi.OpenPath(path)
	if err != nil {
		return nil, err
	}
	return &hidapiDevice{d: d}, nil
}

func (m *hidapiManager) Close() error { return hidapi.Exit() }

type hidapiDevice struct{ d *hidapi.Device }

func (d *hidapiDevice) Read(p []byte) (int, error) { return d.d.Read(p) }

func (d *hidapiDevice) ReadTimeout(p []byte, timeout time.Duration) (int, error) {
	return d.d.ReadWithTimeout(p, timeout)
}

func (d *hidapiDevice) SendFeatureReport(p []byte) (int, error) {
	return d.d.SendFeatureReport(p)
}

func (d *hidapiDevice) Close() error { return d.d.Close() }
