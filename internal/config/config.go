package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/matrixrain/internal/palette"
	"github.com/san-kum/matrixrain/internal/rain"
)

// Integer settings all live on a 1-10 scale, matching the CLI.
const (
	MinSetting = 1
	MaxSetting = 10
)

const (
	DefaultSpeed   = 4
	DefaultDepth   = 4
	DefaultLength  = 7
	DefaultAir     = 5
	DefaultTheme   = "matrix"
	DefaultCharset = "matrix"
)

type Config struct {
	Speed   int    `yaml:"speed"`   // inverse tick delay
	Depth   int    `yaml:"depth"`   // deepest layer index in use
	Length  int    `yaml:"length"`  // global length scaling ratio
	Air     int    `yaml:"air"`     // global spacing scaling ratio
	Typing  bool   `yaml:"typing"`  // only 'q' exits instead of any key
	Theme   string `yaml:"theme"`   // palette theme name
	Charset string `yaml:"charset"` // symbol set name
	Seed    int64  `yaml:"seed"`    // rng seed, 0 = time-based
}

func Default() *Config {
	return &Config{
		Speed:   DefaultSpeed,
		Depth:   DefaultDepth,
		Length:  DefaultLength,
		Air:     DefaultAir,
		Theme:   DefaultTheme,
		Charset: DefaultCharset,
	}
}

// Validate rejects out-of-range values at the boundary; the core assumes
// validated settings and does not re-check them.
func (c *Config) Validate() error {
	for _, v := range []struct {
		name  string
		value int
	}{
		{"speed", c.Speed},
		{"depth", c.Depth},
		{"length", c.Length},
		{"air", c.Air},
	} {
		if v.value < MinSetting || v.value > MaxSetting {
			return fmt.Errorf("%s out of range (%d-%d): got %d", v.name, MinSetting, MaxSetting, v.value)
		}
	}
	if !palette.Has(c.Theme) {
		return fmt.Errorf("unknown theme: %s (available: %v)", c.Theme, palette.Names())
	}
	if _, err := rain.Charset(c.Charset); err != nil {
		return err
	}
	return nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
