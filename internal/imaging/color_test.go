package imaging

import (
	"errors"
	"image/color"
	"testing"
)

func TestSampleColor(t *testing.T) {
	r := mustRaster(t, createPatternImage(100, 100))

	result, err := SampleColor(r, 25, 25)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF0000" {
		t.Errorf("Hex: got %s, want #FF0000", result.Hex)
	}
	if result.RGB != (RGBColor{R: 255}) {
		t.Errorf("RGB: got %+v, want {255 0 0}", result.RGB)
	}
	if result.HSV != (HSVColor{H: 0, S: 100, V: 100}) {
		t.Errorf("HSV: got %+v, want {0 100 100}", result.HSV)
	}
	if result.X != 25 || result.Y != 25 {
		t.Errorf("coordinates: got (%d,%d), want (25,25)", result.X, result.Y)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		c       color.RGBA
		wantHex string
		wantHSV HSVColor
	}{
		{"black", color.RGBA{0, 0, 0, 255}, "#000000", HSVColor{0, 0, 0}},
		{"white", color.RGBA{255, 255, 255, 255}, "#FFFFFF", HSVColor{0, 0, 100}},
		{"green", color.RGBA{0, 255, 0, 255}, "#00FF00", HSVColor{120, 100, 100}},
		{"blue", color.RGBA{0, 0, 255, 255}, "#0000FF", HSVColor{240, 100, 100}},
		{"half gray", color.RGBA{128, 128, 128, 255}, "#808080", HSVColor{0, 0, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRaster(t, createInMemoryImage(10, 10, tt.c))
			result, err := SampleColor(r, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.HSV != tt.wantHSV {
				t.Errorf("HSV: got %+v, want %+v", result.HSV, tt.wantHSV)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	r := mustRaster(t, createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255}))

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(r, tt.x, tt.y)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("got %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{"#FF0000", color.NRGBA{255, 0, 0, 255}, false},
		{"00FF00", color.NRGBA{0, 255, 0, 255}, false},
		{"#0000FF80", color.NRGBA{0, 0, 255, 128}, false},
		{" #abcdef ", color.NRGBA{0xAB, 0xCD, 0xEF, 255}, false},
		{"", color.NRGBA{}, true},
		{"#", color.NRGBA{}, true},
		{"#FFF", color.NRGBA{}, true},
		{"#GGGGGG", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
