package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetupWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scctl.log")
	logger, closers, err := Setup("debug", path)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	logger.Debug("file sink check", "k", "v")
	for _, c := range closers {
		_ = c.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "file sink check") {
		t.Errorf("record missing from file: %q", data)
	}
}

func TestSetupBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "scctl.log")
	if _, _, err := Setup("info", path); err == nil {
		t.Error("Setup accepted an unwritable path")
	}
}

func TestRawLoggerFrame(t *testing.T) {
	var buf bytes.Buffer
	r := NewRaw(&buf)
	r.Frame([]byte{0x01, 0xab})

	out := buf.String()
	if !strings.Contains(out, "frame: 2 bytes, hex: 01-ab") {
		t.Errorf("unexpected line: %q", out)
	}

	// Empty frames and nil writers are both quiet no-ops.
	mark := buf.Len()
	r.Frame(nil)
	if buf.Len() != mark {
		t.Error("empty frame wrote output")
	}
	NewRaw(nil).Frame([]byte{0x01})
}
