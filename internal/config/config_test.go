package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFrom_Missing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom missing file: %v", err)
	}
	if cfg.MaxLength != 0 {
		t.Errorf("MaxLength = %d, want 0", cfg.MaxLength)
	}
	if cfg.OverflowStr != "..." {
		t.Errorf("OverflowStr = %q, want %q", cfg.OverflowStr, "...")
	}
	if cfg.Theme != "auto" {
		t.Errorf("Theme = %q, want auto", cfg.Theme)
	}
}

func TestLoadFrom_ValidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `max_length: 80
overflow_str: "…"
classic: true
theme: dark
keymap: /tmp/keymap.yaml
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.MaxLength != 80 {
		t.Errorf("MaxLength = %d, want 80", cfg.MaxLength)
	}
	if cfg.OverflowStr != "…" {
		t.Errorf("OverflowStr = %q", cfg.OverflowStr)
	}
	if !cfg.Classic {
		t.Error("expected classic = true")
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
	if cfg.Keymap != "/tmp/keymap.yaml" {
		t.Errorf("Keymap = %q", cfg.Keymap)
	}
}

func TestLoadFrom_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("max_length: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.MaxLength != 40 {
		t.Errorf("MaxLength = %d, want 40", cfg.MaxLength)
	}
	if cfg.OverflowStr != "..." {
		t.Errorf("OverflowStr = %q, want default", cfg.OverflowStr)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"negative max_length", "max_length: -1\n"},
		{"escape in overflow", "overflow_str: \"\x1b[1m!\"\n"},
		{"bad theme", "theme: sepia\n"},
		{"malformed", "max_length: [\n"},
	}
	for _, tt := range cases {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFrom(path); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("HINTLINE_CONFIG", "/tmp/custom.yaml")
	if got := DefaultPath(); got != "/tmp/custom.yaml" {
		t.Errorf("DefaultPath = %q", got)
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("max_length: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan *Config, 1)
	closer, err := Watch(path, func(c *Config) {
		select {
		case reloaded <- c:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer closer.Close()

	if err := os.WriteFile(path, []byte("max_length: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.MaxLength != 20 {
			t.Errorf("reloaded MaxLength = %d, want 20", cfg.MaxLength)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}
