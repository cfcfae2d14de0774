package config

import "sort"

// Named starting points for common looks. Presets are full configs; flags
// still override individual fields.
var presets = map[string]*Config{
	"classic": {
		Speed:   4,
		Depth:   1,
		Length:  7,
		Air:     5,
		Theme:   "matrix",
		Charset: "matrix",
	},
	"deep": {
		Speed:   5,
		Depth:   9,
		Length:  8,
		Air:     6,
		Theme:   "matrix",
		Charset: "matrix",
	},
	"downpour": {
		Speed:   9,
		Depth:   3,
		Length:  10,
		Air:     2,
		Theme:   "ice",
		Charset: "ascii",
	},
	"drift": {
		Speed:   2,
		Depth:   7,
		Length:  5,
		Air:     9,
		Theme:   "amber",
		Charset: "greek",
	},
}

// GetPreset returns a copy of the named preset, or nil if it does not
// exist.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns the available preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
