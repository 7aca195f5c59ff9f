package zoom

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
title: atlas
width: 1024
zoom_duration: 750ms
easing: OutCubic
clear_color: {r: 0, g: 0, b: 0.2, a: 1}
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Title != "atlas" || cfg.Width != 1024 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Height != 600 {
		t.Errorf("Height = %d, want default 600", cfg.Height)
	}
	if cfg.ZoomDuration != 750*time.Millisecond {
		t.Errorf("ZoomDuration = %v", cfg.ZoomDuration)
	}
	if cfg.ClearColor != (Color{B: 0.2, A: 1}) {
		t.Errorf("ClearColor = %+v", cfg.ClearColor)
	}
	if got := cfg.EasingFunc()(0.5); got != OutCubic(0.5) {
		t.Errorf("EasingFunc did not resolve OutCubic")
	}
}

func TestParseConfigEmpty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig(nil): %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestParseConfigRejectsUnknownKeys(t *testing.T) {
	if _, err := ParseConfig([]byte("zoom_speed: 3\n")); err == nil {
		t.Error("unknown key accepted")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":        func(c *Config) { c.Width = 0 },
		"negative poll":     func(c *Config) { c.PollInterval = -time.Millisecond },
		"negative duration": func(c *Config) { c.ZoomDuration = -1 },
		"negative debounce": func(c *Config) { c.Debounce = -1 },
		"negative slop":     func(c *Config) { c.ClickSlop = -1 },
		"unknown easing":    func(c *Config) { c.Easing = "Wobble" },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: err = %v, want ErrInvalidConfig", name, err)
		}
	}
}

func TestConfigMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Title = "round trip"
	cfg.Debounce = 150 * time.Millisecond
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	back, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig(Marshal): %v\n%s", err, data)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, want %+v", back, cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoom.yaml")
	if err := os.WriteFile(path, []byte("debug: true\nshow_fps: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug || !cfg.ShowFPS {
		t.Errorf("cfg = %+v", cfg)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
