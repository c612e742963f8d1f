package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
	if cfg.FPS != DefaultFPS || cfg.Format != DefaultFormat {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero fps", func(c *Config) { c.FPS = 0 }, true},
		{"negative fps", func(c *Config) { c.FPS = -1 }, true},
		{"tiny width", func(c *Config) { c.Width = 32 }, true},
		{"tiny height", func(c *Config) { c.Height = 10 }, true},
		{"png format", func(c *Config) { c.Format = "png" }, false},
		{"svg format", func(c *Config) { c.Format = "svg" }, false},
		{"unknown format", func(c *Config) { c.Format = "webm" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evalviz.yaml")
	cfg := &Config{FPS: 15, Width: 640, Height: 360, Format: "png", OutDir: "out", Preview: true}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, cfg)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("fps: 24\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FPS != 24 {
		t.Errorf("expected fps 24, got %d", cfg.FPS)
	}
	if cfg.Width != DefaultWidth || cfg.Format != DefaultFormat {
		t.Errorf("expected defaults for unset fields: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for _, name := range names {
		p := GetPreset(name)
		if p == nil {
			t.Fatalf("listed preset %q not found", name)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("preset %q must validate: %v", name, err)
		}
	}
	if GetPreset("nope") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestGetPresetReturnsCopy(t *testing.T) {
	a := GetPreset("draft")
	if a == nil {
		t.Fatal("expected draft preset")
	}
	a.FPS = 999
	if b := GetPreset("draft"); b.FPS == 999 {
		t.Error("expected independent copies")
	}
}
