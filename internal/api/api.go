// Package api is the command surface between the driver core and
// whatever shell drives it. Requests and responses are JSON strings;
// typed errors stop here and leave as a closed set of machine-readable
// kinds. A UI layer talks to the controller only through Dispatch.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/seagrayinc/sc-hid/internal/log"
	"github.com/seagrayinc/sc-hid/pkg/hid"
	"github.com/seagrayinc/sc-hid/pkg/sc"
)

// Request carries one operation's input.
type Request struct {
	Ctx     context.Context
	Payload string
}

// Response holds the JSON document to hand back to the shell.
type Response struct {
	JSON string
}

// HandlerFunc processes a request and populates the response. The
// logger is operation-scoped.
type HandlerFunc func(req *Request, res *Response, logger *slog.Logger) error

// Service owns the route table and the shared controller state behind
// it.
type Service struct {
	log    *slog.Logger
	routes map[string]HandlerFunc
}

// New builds a Service with every operation registered against the
// given manager and HID backend. Raw frames read through input/raw are
// mirrored to raw.
func New(mgr *sc.Manager, hm hid.Manager, logger *slog.Logger, raw log.RawLogger) *Service {
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	s := &Service{log: logger, routes: map[string]HandlerFunc{}}
	s.Register("ping", Ping())
	s.Register("hid/list", HIDList(hm))
	s.Register("hid/vendor", HIDVendor(hm))
	s.Register("device/list", DeviceList(hm))
	s.Register("device/detect", DeviceDetect(mgr))
	s.Register("device/connect", DeviceConnect(mgr, hm))
	s.Register("device/disconnect", DeviceDisconnect(mgr))
	s.Register("device/status", DeviceStatus(mgr))
	s.Register("input/read", InputRead(mgr))
	s.Register("input/raw", InputRaw(mgr, raw))
	return s
}

// Register installs a handler for an operation name. Names are
// case-insensitive.
func (s *Service) Register(op string, h HandlerFunc) {
	s.routes[strings.ToLower(op)] = h
}

// Dispatch runs one operation. On success it returns the handler's JSON
// document; on failure the returned error is always a *Error carrying
// the mapped kind, and the JSON is its envelope. Either way the caller
// has a printable document.
func (s *Service) Dispatch(ctx context.Context, op, payload string) (string, error) {
	h, ok := s.routes[strings.ToLower(op)]
	if !ok {
		e := &Error{Kind: KindUnknownOp, Detail: fmt.Sprintf("unknown operation %q", op)}
		return e.Envelope(), e
	}

	req := &Request{Ctx: ctx, Payload: payload}
	res := &Response{}
	logger := s.log.With(slog.String("op", op))

	if err := h(req, res, logger); err != nil {
		e := WrapError(err)
		logger.Warn("operation failed",
			slog.String("kind", e.Kind),
			slog.String("detail", e.Detail))
		return e.Envelope(), e
	}
	return res.JSON, nil
}
