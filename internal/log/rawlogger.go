package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// RawLogger captures raw input frames for offline protocol analysis.
type RawLogger interface {
	Frame(data []byte)
}

// rawLogger writes one line per frame; safe for concurrent use.
type rawLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewRaw returns a RawLogger writing to w. A nil writer yields a no-op
// logger, so call sites never have to branch.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

func (r *rawLogger) Frame(data []byte) {
	if r.w == nil || len(data) == 0 {
		return
	}

	var hex strings.Builder
	for i, b := range data {
		if i > 0 {
			hex.WriteByte('-')
		}
		fmt.Fprintf(&hex, "%02x", b)
	}

	line := fmt.Sprintf("%s frame: %d bytes, hex: %s\n",
		time.Now().Format("2006/01/02 15:04:05.000"),
		len(data),
		hex.String())

	r.mu.Lock()
	_, _ = io.WriteString(r.w, line)
	r.mu.Unlock()
}
