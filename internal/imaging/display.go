package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
)

// Bitmap is a packed, display-ready pixel buffer with three bytes per pixel
// in the order of the display that produced it.
type Bitmap struct {
	Width  int
	Height int
	Stride int
	Order  ColorOrder
	Pix    []byte
}

// Image returns the bitmap as an RGB image.Image, undoing the display order.
func (b *Bitmap) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	ri, bi := 0, 2
	if b.Order == OrderBGR {
		ri, bi = 2, 0
	}
	for y := 0; y < b.Height; y++ {
		src := b.Pix[y*b.Stride : y*b.Stride+b.Width*3]
		dst := img.Pix[y*img.Stride : y*img.Stride+b.Width*4]
		for x := 0; x < b.Width; x++ {
			dst[x*4] = src[x*3+ri]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+bi]
			dst[x*4+3] = 0xff
		}
	}
	return img
}

// PNG encodes the bitmap.
func (b *Bitmap) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, b.Image()); err != nil {
		return nil, fmt.Errorf("failed to encode bitmap: %w", err)
	}
	return buf.Bytes(), nil
}

// Display converts rasters into bitmaps for a surface with a fixed component
// order. It keeps no state between calls.
type Display struct {
	order ColorOrder
}

// NewDisplay returns a display adapter that emits bitmaps in order.
func NewDisplay(order ColorOrder) Display {
	return Display{order: order}
}

// Order returns the component order of produced bitmaps.
func (d Display) Order() ColorOrder { return d.order }

// FitScale returns min(availWidth/width, availHeight/height, 1).
func FitScale(width, height, availWidth, availHeight int) float64 {
	scale := math.Min(float64(availWidth)/float64(width), float64(availHeight)/float64(height))
	return math.Min(scale, 1)
}

// Render scales r down to fit availWidth x availHeight and packs it in the
// display order. Images that already fit are never enlarged.
func (d Display) Render(r *Raster, availWidth, availHeight int) (*Bitmap, error) {
	if r == nil {
		return nil, ErrNoImageLoaded
	}
	if availWidth <= 0 || availHeight <= 0 {
		return nil, fmt.Errorf("%w: display area %dx%d", ErrInvalidParameter, availWidth, availHeight)
	}

	w, h := r.Width(), r.Height()
	var src image.Image = r.pix
	if scale := FitScale(w, h, availWidth, availHeight); scale < 1 {
		w = max(1, int(math.Round(float64(w)*scale)))
		h = max(1, int(math.Round(float64(h)*scale)))
		src = imaging.Resize(r.pix, w, h, imaging.Linear)
	}

	rgba := clone.AsRGBA(src)
	bm := &Bitmap{
		Width:  w,
		Height: h,
		Stride: w * 3,
		Order:  d.order,
		Pix:    make([]byte, w*h*3),
	}
	ri, bi := 0, 2
	if d.order == OrderBGR {
		ri, bi = 2, 0
	}
	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			in := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
			out := bm.Pix[y*bm.Stride : y*bm.Stride+w*3]
			for x := 0; x < w; x++ {
				out[x*3+ri] = in[x*4]
				out[x*3+1] = in[x*4+1]
				out[x*3+bi] = in[x*4+2]
			}
		}
	})
	return bm, nil
}
