package imaging

import (
	"errors"
	"testing"
)

func TestParseChannel(t *testing.T) {
	tests := []struct {
		input   string
		want    Channel
		wantErr bool
	}{
		{"R", ChannelRed, false},
		{"red", ChannelRed, false},
		{"g", ChannelGreen, false},
		{"Green", ChannelGreen, false},
		{"B", ChannelBlue, false},
		{"BLUE", ChannelBlue, false},
		{"None", ChannelNone, false},
		{"", ChannelNone, false},
		{"alpha", ChannelNone, true},
		{"x", ChannelNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseChannel(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidParameter) {
					t.Errorf("got %v, want ErrInvalidParameter", err)
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

func TestIsolateChannel(t *testing.T) {
	src := mustRaster(t, createGradientImage(40, 30))

	tests := []struct {
		channel Channel
		keep    int
	}{
		{ChannelRed, 0},
		{ChannelGreen, 1},
		{ChannelBlue, 2},
	}

	for _, tt := range tests {
		t.Run(tt.channel.String(), func(t *testing.T) {
			out, err := IsolateChannel(src, tt.channel)
			if err != nil {
				t.Fatalf("IsolateChannel failed: %v", err)
			}
			if out.Width() != src.Width() || out.Height() != src.Height() {
				t.Fatalf("dimensions: got %dx%d, want %dx%d",
					out.Width(), out.Height(), src.Width(), src.Height())
			}

			for y := 0; y < src.Height(); y++ {
				for x := 0; x < src.Width(); x++ {
					sr, sg, sb := src.RGBAt(x, y)
					or, og, ob := out.RGBAt(x, y)
					in := [3]uint8{sr, sg, sb}
					got := [3]uint8{or, og, ob}
					for i := 0; i < 3; i++ {
						want := uint8(0)
						if i == tt.keep {
							want = in[i]
						}
						if got[i] != want {
							t.Fatalf("pixel (%d,%d) component %d: got %d, want %d", x, y, i, got[i], want)
						}
					}
				}
			}
		})
	}
}

func TestIsolateChannel_None(t *testing.T) {
	src := mustRaster(t, createGradientImage(25, 25))

	out, err := IsolateChannel(src, ChannelNone)
	if err != nil {
		t.Fatalf("IsolateChannel failed: %v", err)
	}
	if !out.Equal(src) {
		t.Error("ChannelNone should return an identical raster")
	}
	if out == src {
		t.Error("ChannelNone should return a copy, not the input")
	}
}

func TestIsolateChannel_DoesNotModifyInput(t *testing.T) {
	src := mustRaster(t, createPatternImage(20, 20))
	before := src.Clone()

	if _, err := IsolateChannel(src, ChannelGreen); err != nil {
		t.Fatalf("IsolateChannel failed: %v", err)
	}
	if !src.Equal(before) {
		t.Error("input raster was modified")
	}
}

func TestIsolateChannel_Unknown(t *testing.T) {
	src := mustRaster(t, createPatternImage(20, 20))

	_, err := IsolateChannel(src, Channel(42))
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got %v, want ErrInvalidParameter", err)
	}
}
