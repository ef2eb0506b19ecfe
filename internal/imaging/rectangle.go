package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// OutlineWidth is the stroke width of DrawRectangle, in pixels.
const OutlineWidth = 2

// DefaultOutlineColor is the stroke color used when none is configured.
var DefaultOutlineColor = color.NRGBA{R: 255, A: 255}

// ValidateRectangle checks that (x1,y1)-(x2,y2) describes a non-empty region
// inside src: 0 <= x1 < x2 <= width and 0 <= y1 < y2 <= height.
func ValidateRectangle(src *Raster, x1, y1, x2, y2 int) error {
	w, h := src.Width(), src.Height()
	if x1 < 0 || y1 < 0 || x2 > w || y2 > h {
		return fmt.Errorf("%w: rectangle (%d,%d)-(%d,%d) outside image bounds %dx%d",
			ErrInvalidParameter, x1, y1, x2, y2, w, h)
	}
	if x1 >= x2 || y1 >= y2 {
		return fmt.Errorf("%w: rectangle requires x1 < x2 and y1 < y2", ErrInvalidParameter)
	}
	return nil
}

// DrawRectangle returns a copy of src with a rectangle outline stamped on it.
//
// The outline is OutlineWidth pixels wide and lies inside the region
// [x1,x2) x [y1,y2), so a rectangle covering the whole image only touches the
// outermost pixels. Regions narrower than two strokes are filled. A nil color
// selects DefaultOutlineColor; any alpha in c is ignored.
func DrawRectangle(src *Raster, x1, y1, x2, y2 int, c color.Color) (*Raster, error) {
	if err := ValidateRectangle(src, x1, y1, x2, y2); err != nil {
		return nil, err
	}
	if c == nil {
		c = DefaultOutlineColor
	}
	stroke := color.NRGBAModel.Convert(c).(color.NRGBA)
	stroke.A = 0xff

	dst := src.Clone()
	outer := image.Rect(x1, y1, x2, y2)
	fill := image.NewUniform(stroke)
	bands := []image.Rectangle{
		image.Rect(x1, y1, x2, y1+OutlineWidth), // top
		image.Rect(x1, y2-OutlineWidth, x2, y2), // bottom
		image.Rect(x1, y1, x1+OutlineWidth, y2), // left
		image.Rect(x2-OutlineWidth, y1, x2, y2), // right
	}
	for _, band := range bands {
		draw.Draw(dst.pix, band.Intersect(outer), fill, image.Point{}, draw.Src)
	}
	return dst, nil
}
