package sc

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/seagrayinc/sc-hid/pkg/hid"
)

const (
	// PollTimeout bounds the device wait on the non-blocking read path.
	PollTimeout = 10 * time.Millisecond
	// DefaultReadTimeout applies when a blocking read is requested with
	// a non-positive timeout.
	DefaultReadTimeout = time.Second
)

// Manager owns at most one controller connection. A single mutex
// serializes lifecycle transitions and device I/O, so no caller ever
// observes a half-open handle and no I/O lands on a released one. The
// manager runs no background goroutines; every operation executes on
// the calling goroutine.
type Manager struct {
	hid hid.Manager

	mu   sync.Mutex
	dev  hid.Device
	desc DeviceDescriptor
}

// NewManager returns a disconnected Manager backed by h.
func NewManager(h hid.Manager) *Manager {
	return &Manager{hid: h}
}

// Detect reports the first discoverable controller without opening it.
func (m *Manager) Detect() (DeviceDescriptor, bool) {
	devs := Discover(m.hid)
	if len(devs) == 0 {
		return DeviceDescriptor{}, false
	}
	return devs[0], true
}

// Connect opens a controller and switches it to raw input. A nil
// descriptor means take the first discovered controller. Connecting
// while connected returns the current descriptor unchanged.
//
// The firmware emulation is disabled as part of a successful connect.
// If the mode switch fails the handle is closed again and no state is
// retained.
func (m *Manager) Connect(desc *DeviceDescriptor) (DeviceDescriptor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dev != nil {
		return m.desc, nil
	}

	var d DeviceDescriptor
	if desc != nil {
		d = *desc
	} else {
		devs := Discover(m.hid)
		if len(devs) == 0 {
			return DeviceDescriptor{}, ErrNotFound
		}
		d = devs[0]
	}

	dev, err := m.hid.Open(d.Path)
	if err != nil {
		return DeviceDescriptor{}, fmt.Errorf("%w: %s: %v", ErrOpenFailed, d.Path, err)
	}
	if err := DisableEmulation(dev); err != nil {
		if cerr := dev.Close(); cerr != nil {
			slog.Warn("close after failed mode switch", slog.Any("error", cerr))
		}
		return DeviceDescriptor{}, err
	}

	m.dev = dev
	m.desc = d
	slog.Info("controller connected",
		slog.String("path", d.Path),
		slog.String("medium", string(d.Medium)))
	return d, nil
}

// Disconnect re-enables the firmware emulation and closes the handle.
// Already disconnected is a no-op with no device I/O. The handle is
// closed and the state cleared even when the enable write fails; that
// failure is still returned so callers know the controller may stay in
// raw mode until replugged.
func (m *Manager) Disconnect() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dev == nil {
		return nil
	}

	restoreErr := EnableEmulation(m.dev)
	if restoreErr != nil {
		slog.Warn("emulation re-enable failed",
			slog.String("path", m.desc.Path),
			slog.Any("error", restoreErr))
	}
	closeErr := m.dev.Close()
	m.dev = nil
	m.desc = DeviceDescriptor{}
	slog.Info("controller disconnected")

	if restoreErr != nil {
		return restoreErr
	}
	return closeErr
}

// Connected reports whether a controller is currently held open.
func (m *Manager) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dev != nil
}

// Status returns the connected controller's descriptor, if any.
func (m *Manager) Status() (DeviceDescriptor, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.desc, m.dev != nil
}

// ReadInput polls for one frame without blocking the caller beyond
// PollTimeout. ErrNoData means the controller was idle this tick;
// ErrLockUnavailable means another operation held the manager. Pollers
// treat both as try-again-next-tick.
func (m *Manager) ReadInput() (InputSnapshot, error) {
	if !m.mu.TryLock() {
		return InputSnapshot{}, ErrLockUnavailable
	}
	defer m.mu.Unlock()
	return m.readLocked(PollTimeout, ErrNoData)
}

// ReadInputBlocking waits up to timeout for one frame. A non-positive
// timeout falls back to DefaultReadTimeout; expiry yields
// ErrReadTimeout.
func (m *Manager) ReadInputBlocking(timeout time.Duration) (InputSnapshot, error) {
	if timeout <= 0 {
		timeout = DefaultReadTimeout
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.readLocked(timeout, ErrReadTimeout)
}

func (m *Manager) readLocked(timeout time.Duration, empty error) (InputSnapshot, error) {
	if m.dev == nil {
		return InputSnapshot{}, ErrNotConnected
	}
	buf := make([]byte, FrameLen)
	n, err := m.dev.ReadTimeout(buf, timeout)
	if err != nil {
		return InputSnapshot{}, fmt.Errorf("read input report: %w", err)
	}
	if n == 0 {
		return InputSnapshot{}, empty
	}
	return Decode(buf[:n])
}

// ReadRaw returns one undecoded frame for protocol diagnostics, with
// the same non-blocking semantics as ReadInput.
func (m *Manager) ReadRaw() ([]byte, error) {
	if !m.mu.TryLock() {
		return nil, ErrLockUnavailable
	}
	defer m.mu.Unlock()

	if m.dev == nil {
		return nil, ErrNotConnected
	}
	buf := make([]byte, FrameLen)
	n, err := m.dev.ReadTimeout(buf, PollTimeout)
	if err != nil {
		return nil, fmt.Errorf("read input report: %w", err)
	}
	if n == 0 {
		return nil, ErrNoData
	}
	return buf[:n], nil
}
