package imaging

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSVColor represents a color in HSV (Hue, Saturation, Value) color space.
//
// V is the component scaled by AdjustBrightness.
type HSVColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	V int `json:"v"` // Value: 0-100 percent (0=black)
}

// ColorResult contains a pixel color in several representations.
type ColorResult struct {
	X   int      `json:"x"`
	Y   int      `json:"y"`
	Hex string   `json:"hex"` // "#RRGGBB"
	RGB RGBColor `json:"rgb"`
	HSV HSVColor `json:"hsv"`
}

// SampleColor returns the color of the pixel at (x, y).
//
// Coordinates are 0-based with the origin at the top-left corner; valid
// ranges are 0..width-1 and 0..height-1.
func SampleColor(r *Raster, x, y int) (*ColorResult, error) {
	if x < 0 || y < 0 || x >= r.Width() || y >= r.Height() {
		return nil, fmt.Errorf("%w: coordinates (%d,%d) outside image bounds %dx%d",
			ErrInvalidParameter, x, y, r.Width(), r.Height())
	}

	r8, g8, b8 := r.RGBAt(x, y)
	h, s, v := colorful.Color{
		R: float64(r8) / 255,
		G: float64(g8) / 255,
		B: float64(b8) / 255,
	}.Hsv()

	return &ColorResult{
		X:   x,
		Y:   y,
		Hex: fmt.Sprintf("#%02X%02X%02X", r8, g8, b8),
		RGB: RGBColor{R: r8, G: g8, B: b8},
		HSV: HSVColor{H: int(h + 0.5), S: int(s*100 + 0.5), V: int(v*100 + 0.5)},
	}, nil
}

// ParseHexColor parses a hex color string like "#FF0000" or "#FF000080".
// The leading '#' is optional.
func ParseHexColor(hex string) (color.NRGBA, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if hex == "" {
		return color.NRGBA{}, fmt.Errorf("%w: empty color string", ErrInvalidParameter)
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: color %q: %v", ErrInvalidParameter, hex, err)
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: color %q: %v", ErrInvalidParameter, hex, err)
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.NRGBA{}, fmt.Errorf("%w: invalid hex color length", ErrInvalidParameter)
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
