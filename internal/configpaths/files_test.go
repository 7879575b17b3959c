package configpaths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigCandidatePathsRouting(t *testing.T) {
	tests := []struct {
		userPath string
		bucket   string
	}{
		{"custom.yaml", "yaml"},
		{"custom.yml", "yaml"},
		{"custom.toml", "toml"},
		{"custom.json", "json"},
		{"custom.conf", "json"},
	}

	for _, tt := range tests {
		jsonPaths, yamlPaths, tomlPaths := ConfigCandidatePaths(tt.userPath)
		var first string
		switch tt.bucket {
		case "json":
			first = jsonPaths[0]
		case "yaml":
			first = yamlPaths[0]
		case "toml":
			first = tomlPaths[0]
		}
		if first != tt.userPath {
			t.Errorf("%q: not prioritized in %s bucket (got %q)", tt.userPath, tt.bucket, first)
		}
	}
}

func TestConfigCandidatePathsDefaults(t *testing.T) {
	jsonPaths, yamlPaths, tomlPaths := ConfigCandidatePaths("")
	if len(jsonPaths) == 0 || len(yamlPaths) == 0 || len(tomlPaths) == 0 {
		t.Fatal("empty candidate set")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if jsonPaths[0] != filepath.Join(wd, "scctl.json") {
		t.Errorf("first json candidate: %q", jsonPaths[0])
	}
}

func TestEnsureDir(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "a", "b", "scctl.json")
	if err := EnsureDir(dest); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	if _, err := os.Stat(filepath.Dir(dest)); err != nil {
		t.Errorf("directory missing: %v", err)
	}
}
