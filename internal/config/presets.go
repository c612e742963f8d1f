package config

import "sort"

// Presets are named render qualities, mirroring the usual preview /
// production split of animation tooling.
var Presets = map[string]*Config{
	"draft": {
		FPS: 10, Width: 320, Height: 180, Format: "gif", OutDir: DefaultOutDir,
	},
	"preview": {
		FPS: 15, Width: 640, Height: 360, Format: "gif", OutDir: DefaultOutDir,
		Preview: true,
	},
	"production": {
		FPS: 30, Width: 1280, Height: 720, Format: "gif", OutDir: DefaultOutDir,
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns the preset names, sorted lexically.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
