package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"kirkle/physics"
	"kirkle/render"
)

// Config holds all kirkle configuration.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Physics  physics.Params `yaml:"physics"`
	Colors   ColorsConfig   `yaml:"colors"`
	HUD      HUDConfig      `yaml:"hud"`
	Headless HeadlessConfig `yaml:"headless"`
}

// WindowConfig sizes the playfield and the window showing it. The playfield
// is Width x Height pixels; Scale only resizes the window.
type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	TPS    int     `yaml:"tps"`
}

// ColorsConfig holds "#rrggbb" colours.
type ColorsConfig struct {
	Background string `yaml:"background"`
	Circle     string `yaml:"circle"`
	Square     string `yaml:"square"`
}

// HUDConfig toggles the text overlay at start-up; F1 flips it at run time.
type HUDConfig struct {
	Enabled bool `yaml:"enabled"`
}

// HeadlessConfig tunes --headless runs.
type HeadlessConfig struct {
	Hz int `yaml:"hz"`
	// LogEvery emits a state line every N steps (0 disables it).
	LogEvery uint64 `yaml:"log_every"`
}

// Default returns the built-in configuration: an 800x1000 playfield at 60 TPS.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "kirkle",
			Width:  800,
			Height: 1000,
			Scale:  1,
			TPS:    60,
		},
		Physics: physics.DefaultParams(),
		Colors: ColorsConfig{
			Background: "#000000",
			Circle:     "#ffffff",
			Square:     "#ff5050",
		},
		HUD: HUDConfig{Enabled: false},
		Headless: HeadlessConfig{
			Hz:       60,
			LogEvery: 60,
		},
	}
}

// Load reads a YAML config on top of the defaults. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("KIRKLE_SCALE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("KIRKLE_SCALE: %w", err)
		}
		c.Window.Scale = f
	}
	if v := os.Getenv("KIRKLE_TPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("KIRKLE_TPS: %w", err)
		}
		c.Window.TPS = n
	}
	if v := os.Getenv("KIRKLE_HUD"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("KIRKLE_HUD: %w", err)
		}
		c.HUD.Enabled = b
	}
	return nil
}

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks window sizing, rates, physics params and colours.
func (c *Config) Validate() error {
	minW := 2 * physics.DefaultRadius
	if c.Window.Width < minW || c.Window.Height < minW {
		return fmt.Errorf("%w: window %dx%d smaller than %dx%d", ErrInvalid, c.Window.Width, c.Window.Height, minW, minW)
	}
	if c.Window.Width > 4096 || c.Window.Height > 4096 {
		return fmt.Errorf("%w: window %dx%d larger than 4096x4096", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("%w: scale %v <= 0", ErrInvalid, c.Window.Scale)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: tps %d <= 0", ErrInvalid, c.Window.TPS)
	}
	if c.Headless.Hz <= 0 {
		return fmt.Errorf("%w: headless hz %d <= 0", ErrInvalid, c.Headless.Hz)
	}
	if err := c.Physics.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Palette(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Palette resolves the configured colours on top of the default palette.
func (c *Config) Palette() (render.Palette, error) {
	p := render.DefaultPalette()
	for _, f := range []struct {
		name string
		s    string
		dst  *color.RGBA
	}{
		{"background", c.Colors.Background, &p.Background},
		{"circle", c.Colors.Circle, &p.Circle},
		{"square", c.Colors.Square, &p.Square},
	} {
		if f.s == "" {
			continue
		}
		col, err := ParseHexColor(f.s)
		if err != nil {
			return p, fmt.Errorf("colors.%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

// ParseHexColor parses "#rrggbb" or "rrggbb".
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("bad colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}
