package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/changegraph/pkg/cache"
	"github.com/matzehuels/changegraph/pkg/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
hash_length = 7
format = "svg"
scale = 2.0
no_cache = true
cache_ttl = "1h30m"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.HashLength != 7 {
		t.Errorf("HashLength = %d, want 7", cfg.HashLength)
	}
	if cfg.Format != "svg" {
		t.Errorf("Format = %q, want %q", cfg.Format, "svg")
	}
	if cfg.Scale != 2.0 {
		t.Errorf("Scale = %g, want 2", cfg.Scale)
	}
	if !cfg.NoCache {
		t.Error("NoCache = false, want true")
	}
	if cfg.CacheTTL != 90*time.Minute {
		t.Errorf("CacheTTL = %s, want 1h30m", cfg.CacheTTL)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, t.TempDir(), "hash_length = 12\n"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.HashLength != 12 {
		t.Errorf("HashLength = %d, want 12", cfg.HashLength)
	}
	if cfg.CacheTTL != cache.TTLArtifact {
		t.Errorf("CacheTTL = %s, want default %s", cfg.CacheTTL, cache.TTLArtifact)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"syntax", "hash_length = ", errors.ErrCodeInvalidConfig},
		{"unknown key", "hash_lenght = 7\n", errors.ErrCodeInvalidConfig},
		{"negative length", "hash_length = -1\n", errors.ErrCodeInvalidConfig},
		{"bad format", "format = \"gif\"\n", errors.ErrCodeInvalidConfig},
		{"negative scale", "scale = -2.0\n", errors.ErrCodeInvalidConfig},
		{"wrong type", "no_cache = \"yes\"\n", errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), tt.content))
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestLoadDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() without file error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("LoadDefault() = %+v, want defaults", cfg)
	}

	if err := os.MkdirAll(filepath.Join(dir, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, filepath.Join(dir, appName), "hash_length = 9\n")

	cfg, err = LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error: %v", err)
	}
	if cfg.HashLength != 9 {
		t.Errorf("HashLength = %d, want 9", cfg.HashLength)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error: %v", err)
	}
	if want := filepath.Join("/xdg", "changegraph", "config.toml"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}
