package api

import (
	"encoding/json"
	"errors"

	"github.com/seagrayinc/sc-hid/pkg/sc"
)

// Error kinds, the closed vocabulary a shell may branch on.
const (
	KindNotFound         = "not_found"
	KindOpenFailed       = "open_failed"
	KindModeToggleFailed = "mode_toggle_failed"
	KindNotConnected     = "not_connected"
	KindNoData           = "no_data"
	KindReadTimeout      = "read_timeout"
	KindInvalidSize      = "invalid_size"
	KindLockUnavailable  = "lock_unavailable"
	KindBadRequest       = "bad_request"
	KindUnknownOp        = "unknown_op"
	KindInternal         = "internal"
)

// Error is the boundary form of a failure: a machine kind plus a human
// detail string.
type Error struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

func (e *Error) Error() string { return e.Kind + ": " + e.Detail }

// Envelope renders the error as the standard response document.
func (e *Error) Envelope() string {
	b, _ := json.Marshal(struct {
		Error *Error `json:"error"`
	}{Error: e})
	return string(b)
}

// WrapError maps library errors onto the kind vocabulary. Anything
// unrecognized becomes KindInternal.
func WrapError(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}

	kind := KindInternal
	switch {
	case errors.Is(err, sc.ErrNotFound):
		kind = KindNotFound
	case errors.Is(err, sc.ErrOpenFailed):
		kind = KindOpenFailed
	case errors.Is(err, sc.ErrModeToggleFailed):
		kind = KindModeToggleFailed
	case errors.Is(err, sc.ErrNotConnected):
		kind = KindNotConnected
	case errors.Is(err, sc.ErrNoData):
		kind = KindNoData
	case errors.Is(err, sc.ErrReadTimeout):
		kind = KindReadTimeout
	case errors.Is(err, sc.ErrInvalidSize):
		kind = KindInvalidSize
	case errors.Is(err, sc.ErrLockUnavailable):
		kind = KindLockUnavailable
	}
	return &Error{Kind: kind, Detail: err.Error()}
}
