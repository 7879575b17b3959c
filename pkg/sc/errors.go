package sc

import "errors"

// Sentinel errors returned by this package. Callers classify with
// errors.Is; user-facing strings belong to the boundary that talks to
// the UI, not here.
var (
	ErrNotFound         = errors.New("sc: no controller found")
	ErrOpenFailed       = errors.New("sc: open failed")
	ErrModeToggleFailed = errors.New("sc: emulation mode toggle failed")
	ErrNotConnected     = errors.New("sc: not connected")

	// ErrNoData is the expected idle outcome of a non-blocking read, not
	// a fault.
	ErrNoData = errors.New("sc: no input report available")

	ErrReadTimeout     = errors.New("sc: read timed out")
	ErrInvalidSize     = errors.New("sc: invalid report size")
	ErrLockUnavailable = errors.New("sc: controller busy")
)
