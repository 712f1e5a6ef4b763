package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissingIsNotAnError(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if cfg.Player.Width != nil {
		t.Fatal("missing file produced settings")
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[player]
width = 160
color = false
listen = ":9000"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	file, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cfg := &PlayerConfig{Width: 120, Color: true, Preview: true}
	file.applyTo(cfg)

	if cfg.Width != 160 {
		t.Errorf("width = %d, expected 160", cfg.Width)
	}
	if cfg.Color {
		t.Error("color not overridden to false")
	}
	if cfg.Listen != ":9000" {
		t.Errorf("listen = %q, expected :9000", cfg.Listen)
	}
	// Fields absent from the file keep their defaults.
	if !cfg.Preview {
		t.Error("preview default lost")
	}
}

func TestLoadFileRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[player\nwidth="), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}
