package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Grid.Width != 40 || cfg.Grid.Height != 20 {
		t.Errorf("default grid = %dx%d, expected 40x20", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.TickRate != 60 {
		t.Errorf("default tick_rate = %d, expected 60", cfg.TickRate)
	}
}

func TestCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("grid:\n  width: 12\n  height: 9\ntick_rate: 30\ntheme:\n  head: \"@\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Grid.Width != 12 || cfg.Grid.Height != 9 {
		t.Errorf("grid = %dx%d, expected 12x9", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Theme.HeadRune() != '@' {
		t.Errorf("head rune = %q, expected '@'", cfg.Theme.HeadRune())
	}
	// Unset theme fields fall back to built-in glyphs.
	if cfg.Theme.BodyRune() != 'o' || cfg.Theme.FoodRune() != '*' {
		t.Error("unset theme glyphs should fall back to defaults")
	}
}

func TestCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config path")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}

	bad := cfg
	bad.Grid.Width = 1
	if bad.Validate() == nil {
		t.Error("1-wide grid should not validate")
	}

	bad = cfg
	bad.TickRate = 0
	if bad.Validate() == nil {
		t.Error("zero tick_rate should not validate")
	}
}
