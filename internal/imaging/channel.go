package imaging

import (
	"fmt"
	"image"
	"strings"

	"github.com/anthonynsimon/bild/channel"
)

// Channel selects which color component survives IsolateChannel.
type Channel int

const (
	// ChannelNone keeps all three components.
	ChannelNone Channel = iota
	ChannelRed
	ChannelGreen
	ChannelBlue
)

// String returns the short channel name: "None", "R", "G" or "B".
func (c Channel) String() string {
	switch c {
	case ChannelNone:
		return "None"
	case ChannelRed:
		return "R"
	case ChannelGreen:
		return "G"
	case ChannelBlue:
		return "B"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// ParseChannel accepts "R", "G", "B", "None" and their long forms
// ("red", "green", "blue"), case-insensitively. An empty string means None.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ChannelNone, nil
	case "r", "red":
		return ChannelRed, nil
	case "g", "green":
		return ChannelGreen, nil
	case "b", "blue":
		return ChannelBlue, nil
	default:
		return ChannelNone, fmt.Errorf("%w: unknown channel %q", ErrInvalidParameter, s)
	}
}

// offset is the component index of the channel within an RGB pixel.
func (c Channel) offset() int {
	return int(c) - 1
}

func (c Channel) bild() channel.Channel {
	switch c {
	case ChannelGreen:
		return channel.Green
	case ChannelBlue:
		return channel.Blue
	default:
		return channel.Red
	}
}

// IsolateChannel splits src into its three component planes and rebuilds a
// raster from the selected plane alone; the other two components are zero.
// ChannelNone returns an unchanged copy.
func IsolateChannel(src *Raster, c Channel) (*Raster, error) {
	switch c {
	case ChannelNone:
		return src.Clone(), nil
	case ChannelRed, ChannelGreen, ChannelBlue:
	default:
		return nil, fmt.Errorf("%w: unknown channel %d", ErrInvalidParameter, int(c))
	}

	plane := channel.Extract(src.pix, c.bild())
	pb := plane.Bounds()

	w, h := src.Width(), src.Height()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	off := c.offset()
	for y := 0; y < h; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for x := 0; x < w; x++ {
			row[x*4+off] = plane.GrayAt(pb.Min.X+x, pb.Min.Y+y).Y
			row[x*4+3] = 0xff
		}
	}
	return &Raster{pix: dst}, nil
}
