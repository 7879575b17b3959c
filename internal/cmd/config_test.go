package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitFormats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"json", `"log-level": "info"`},
		{"yaml", "log-level: info"},
		{"toml", `log-level = "info"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "scctl."+tt.format)
			c := &ConfigInit{Format: tt.format, Output: dest}
			if err := c.Run(); err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			data, err := os.ReadFile(dest)
			if err != nil {
				t.Fatalf("read template: %v", err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("template missing %q:\n%s", tt.want, data)
			}
		})
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "scctl.json")
	if err := os.WriteFile(dest, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := &ConfigInit{Format: "json", Output: dest}
	if err := c.Run(); err == nil {
		t.Error("existing file overwritten without --force")
	}

	c.Force = true
	if err := c.Run(); err != nil {
		t.Errorf("forced Run failed: %v", err)
	}
	data, _ := os.ReadFile(dest)
	if !strings.Contains(string(data), "log-level") {
		t.Errorf("forced write did not replace contents: %q", data)
	}
}

func TestConfigInitCreatesParentDir(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "dir", "scctl.yaml")
	c := &ConfigInit{Format: "yaml", Output: dest}
	if err := c.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Errorf("template not written: %v", err)
	}
}

func TestNormalizeFormat(t *testing.T) {
	tests := []struct{ in, want string }{
		{"json", "json"},
		{"YAML", "yaml"},
		{"yml", "yaml"},
		{"toml", "toml"},
		{"ini", ""},
	}
	for _, tt := range tests {
		if got := normalizeFormat(tt.in); got != tt.want {
			t.Errorf("normalizeFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
