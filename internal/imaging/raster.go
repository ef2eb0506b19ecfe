package imaging

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ColorOrder identifies the order of the three color components in a pixel buffer.
type ColorOrder int

const (
	// OrderRGB stores red, green, blue. Rasters always use this order.
	OrderRGB ColorOrder = iota

	// OrderBGR stores blue, green, red, the layout used by many capture devices
	// and display surfaces.
	OrderBGR
)

// String returns "RGB" or "BGR".
func (o ColorOrder) String() string {
	switch o {
	case OrderRGB:
		return "RGB"
	case OrderBGR:
		return "BGR"
	default:
		return fmt.Sprintf("ColorOrder(%d)", int(o))
	}
}

// Raster is an opaque, three-component pixel grid with its origin at (0,0).
//
// A Raster is treated as immutable once constructed: every operation in this
// package returns a new Raster and leaves its input untouched, so a Raster can
// be shared freely between the original and current slots of a State.
//
// The pixels are held in an *image.NRGBA whose alpha is always 255. Source
// alpha is dropped on construction rather than composited against a
// background, so a half-transparent red pixel stays red.
type Raster struct {
	pix *image.NRGBA
}

// NewRaster returns an all-black raster of the given size.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: raster size %dx%d", ErrInvalidParameter, width, height)
	}
	pix := image.NewNRGBA(image.Rect(0, 0, width, height))
	setOpaque(pix)
	return &Raster{pix: pix}, nil
}

// FromImage copies img into a new Raster.
//
// The copy is rebased so that its bounds start at (0,0). Empty or nil images
// are rejected with ErrInvalidParameter.
func FromImage(img image.Image) (*Raster, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidParameter)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrInvalidParameter, b.Dx(), b.Dy())
	}
	pix := imaging.Clone(img)
	setOpaque(pix)
	return &Raster{pix: pix}, nil
}

// wrap adopts a freshly produced image without an extra copy when it is
// already an origin-based NRGBA buffer.
func wrap(img image.Image) *Raster {
	if pix, ok := img.(*image.NRGBA); ok && pix.Rect.Min == (image.Point{}) {
		setOpaque(pix)
		return &Raster{pix: pix}
	}
	pix := imaging.Clone(img)
	setOpaque(pix)
	return &Raster{pix: pix}
}

func setOpaque(pix *image.NRGBA) {
	w, h := pix.Rect.Dx(), pix.Rect.Dy()
	for y := 0; y < h; y++ {
		row := pix.Pix[y*pix.Stride : y*pix.Stride+w*4]
		for i := 3; i < len(row); i += 4 {
			row[i] = 0xff
		}
	}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.pix.Rect.Dx() }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.pix.Rect.Dy() }

// Order returns the component order of the raster, always OrderRGB.
func (r *Raster) Order() ColorOrder { return OrderRGB }

// RGBAt returns the components of the pixel at (x, y). Out-of-range
// coordinates yield zeros.
func (r *Raster) RGBAt(x, y int) (red, green, blue uint8) {
	if !(image.Point{X: x, Y: y}.In(r.pix.Rect)) {
		return 0, 0, 0
	}
	i := r.pix.PixOffset(x, y)
	s := r.pix.Pix[i : i+3 : i+3]
	return s[0], s[1], s[2]
}

// Clone returns a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	pix := image.NewNRGBA(r.pix.Rect)
	rowLen := r.Width() * 4
	for y := 0; y < r.Height(); y++ {
		copy(pix.Pix[y*pix.Stride:y*pix.Stride+rowLen], r.pix.Pix[y*r.pix.Stride:])
	}
	return &Raster{pix: pix}
}

// Equal reports whether both rasters have the same size and identical pixels.
func (r *Raster) Equal(o *Raster) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.pix.Rect != o.pix.Rect {
		return false
	}
	rowLen := r.Width() * 4
	for y := 0; y < r.Height(); y++ {
		a := r.pix.Pix[y*r.pix.Stride : y*r.pix.Stride+rowLen]
		b := o.pix.Pix[y*o.pix.Stride : y*o.pix.Stride+rowLen]
		if !bytes.Equal(a, b) {
			return false
		}
	}
	return true
}
