// Package config holds runtime settings for the image editing server.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/image-edit-mcp/internal/imaging"
)

// Environment variables read by FromEnv.
const (
	EnvLogLevel      = "IMAGE_EDIT_LOG_LEVEL"
	EnvDisplayWidth  = "IMAGE_EDIT_DISPLAY_WIDTH"
	EnvDisplayHeight = "IMAGE_EDIT_DISPLAY_HEIGHT"
	EnvPolicy        = "IMAGE_EDIT_POLICY"
	EnvRectColor     = "IMAGE_EDIT_RECT_COLOR"
)

// Config holds the settings that shape how the server edits and shows images.
type Config struct {
	// Debug enables per-call logging.
	Debug bool

	// DisplayWidth and DisplayHeight bound the rendered bitmap when a display
	// request does not give its own size.
	DisplayWidth  int
	DisplayHeight int

	// Policy selects which raster operations read from.
	Policy imaging.Policy

	// RectColor is the outline color of drawn rectangles.
	RectColor color.NRGBA
}

// Default returns a Config populated with standard defaults.
func Default() *Config {
	return &Config{
		Debug:         false,
		DisplayWidth:  800,
		DisplayHeight: 600,
		Policy:        imaging.ComposeCurrent,
		RectColor:     imaging.DefaultOutlineColor,
	}
}

// Validate clamps values to usable ranges.
func (c *Config) Validate() error {
	if c.DisplayWidth <= 0 {
		c.DisplayWidth = 800
	}
	if c.DisplayHeight <= 0 {
		c.DisplayHeight = 600
	}
	c.RectColor.A = 0xff
	return nil
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv. Unset variables keep their default.
// Malformed values also keep their default and are reported together in the
// returned error; the Config is usable either way.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := Default()
	var errs []error

	if strings.EqualFold(strings.TrimSpace(getenv(EnvLogLevel)), "debug") {
		cfg.Debug = true
	}

	if v := getenv(EnvDisplayWidth); v != "" {
		n, err := parsePositive(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvDisplayWidth, err))
		} else {
			cfg.DisplayWidth = n
		}
	}

	if v := getenv(EnvDisplayHeight); v != "" {
		n, err := parsePositive(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvDisplayHeight, err))
		} else {
			cfg.DisplayHeight = n
		}
	}

	if v := getenv(EnvPolicy); v != "" {
		p, err := imaging.ParsePolicy(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvPolicy, err))
		} else {
			cfg.Policy = p
		}
	}

	if v := getenv(EnvRectColor); v != "" {
		c, err := imaging.ParseHexColor(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvRectColor, err))
		} else {
			cfg.RectColor = c
		}
	}

	_ = cfg.Validate()
	return cfg, errors.Join(errs...)
}

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}
