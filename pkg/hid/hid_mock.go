package hid

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var errMockClosed = errors.New("hid: device closed")

// MockManager is an in-memory Manager for tests. Interfaces are
// registered up front with AddDevice; Open hands out the registered
// MockDevice for the path.
type MockManager struct {
	mu      sync.Mutex
	infos   []Info
	devices map[string]*MockDevice

	ListErr error // returned by List when set
	OpenErr error // returned by Open when set
}

func NewMockManager() *MockManager {
	return &MockManager{devices: make(map[string]*MockDevice)}
}

// AddDevice registers an interface and returns its device handle.
func (m *MockManager) AddDevice(info Info) *MockDevice {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := &MockDevice{path: info.Path}
	m.infos = append(m.infos, info)
	m.devices[info.Path] = d
	return d
}

// Device returns the registered device for path, or nil.
func (m *MockManager) Device(path string) *MockDevice {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.devices[path]
}

func (m *MockManager) List() ([]Info, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]Info, len(m.infos))
	copy(out, m.infos)
	return out, nil
}

func (m *MockManager) Open(path string) (Device, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	d, ok := m.devices[path]
	if !ok {
		return nil, fmt.Errorf("hid: no such device %q", path)
	}
	d.reopen()
	return d, nil
}

func (m *MockManager) Close() error { return nil }

// MockDevice queues input reports for reads and records feature writes.
// All methods are safe for concurrent use.
type MockDevice struct {
	mu         sync.Mutex
	path       string
	frames     [][]byte
	features   [][]byte
	featureErr error
	readErr    error
	closed     bool
	lateIO     bool
}

// QueueFrame appends one input report to the read queue.
func (d *MockDevice) QueueFrame(p []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c := make([]byte, len(p))
	copy(c, p)
	d.frames = append(d.frames, c)
}

// SetFeatureErr makes subsequent SendFeatureReport calls fail with err.
func (d *MockDevice) SetFeatureErr(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.featureErr = err
}

// SetReadErr makes subsequent reads fail with err.
func (d *MockDevice) SetReadErr(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.readErr = err
}

// FeatureReports returns copies of every payload passed to
// SendFeatureReport, in order.
func (d *MockDevice) FeatureReports() [][]byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([][]byte, len(d.features))
	for i, f := range d.features {
		c := make([]byte, len(f))
		copy(c, f)
		out[i] = c
	}
	return out
}

// Closed reports whether Close has been called since the last Open.
func (d *MockDevice) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// MisusedAfterClose reports whether any I/O was attempted on a closed
// handle.
func (d *MockDevice) MisusedAfterClose() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lateIO
}

func (d *MockDevice) reopen() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = false
}

func (d *MockDevice) Read(p []byte) (int, error) {
	return d.ReadTimeout(p, 0)
}

func (d *MockDevice) ReadTimeout(p []byte, _ time.Duration) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		d.lateIO = true
		return 0, errMockClosed
	}
	if d.readErr != nil {
		return 0, d.readErr
	}
	if len(d.frames) == 0 {
		return 0, nil
	}
	f := d.frames[0]
	d.frames = d.frames[1:]
	return copy(p, f), nil
}

func (d *MockDevice) SendFeatureReport(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		d.lateIO = true
		return 0, errMockClosed
	}
	if d.featureErr != nil {
		return 0, d.featureErr
	}
	c := make([]byte, len(p))
	copy(c, p)
	d.features = append(d.features, c)
	return len(p), nil
}

func (d *MockDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return errMockClosed
	}
	d.closed = true
	return nil
}
