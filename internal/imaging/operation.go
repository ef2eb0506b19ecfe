package imaging

import (
	"fmt"
	"image/color"
)

// Operation is a pure raster transformation. Apply never modifies src and
// returns ErrInvalidParameter (wrapped) when its parameters do not fit src.
type Operation interface {
	Name() string
	Apply(src *Raster) (*Raster, error)
}

// ChannelOp isolates one color component.
type ChannelOp struct {
	Channel Channel
}

func (op ChannelOp) Name() string { return "channel" }

func (op ChannelOp) Apply(src *Raster) (*Raster, error) {
	return IsolateChannel(src, op.Channel)
}

// ResizeOp resamples to an exact size.
type ResizeOp struct {
	Width  int
	Height int
}

func (op ResizeOp) Name() string { return "resize" }

func (op ResizeOp) Apply(src *Raster) (*Raster, error) {
	return Resize(src, op.Width, op.Height)
}

// BrightnessOp reduces the value channel by Percent (0-100).
type BrightnessOp struct {
	Percent int
}

func (op BrightnessOp) Name() string { return "brightness" }

func (op BrightnessOp) Apply(src *Raster) (*Raster, error) {
	return AdjustBrightness(src, op.Percent)
}

// RectangleOp stamps a rectangle outline. A nil Color uses DefaultOutlineColor.
type RectangleOp struct {
	X1, Y1 int
	X2, Y2 int
	Color  color.Color
}

func (op RectangleOp) Name() string { return "rectangle" }

func (op RectangleOp) Apply(src *Raster) (*Raster, error) {
	return DrawRectangle(src, op.X1, op.Y1, op.X2, op.Y2, op.Color)
}

// Describe renders an operation and its parameters for log lines.
func Describe(op Operation) string {
	switch o := op.(type) {
	case ChannelOp:
		return fmt.Sprintf("channel(%s)", o.Channel)
	case ResizeOp:
		return fmt.Sprintf("resize(%dx%d)", o.Width, o.Height)
	case BrightnessOp:
		return fmt.Sprintf("brightness(%d%%)", o.Percent)
	case RectangleOp:
		return fmt.Sprintf("rectangle(%d,%d,%d,%d)", o.X1, o.Y1, o.X2, o.Y2)
	default:
		return op.Name()
	}
}
