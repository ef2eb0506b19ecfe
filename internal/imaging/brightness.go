package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/lucasb-eyer/go-colorful"
)

// AdjustBrightness darkens src by reducing the value channel of every pixel.
//
// Each pixel is converted to HSV, V is multiplied by (1 - percent/100), and the
// result is clamped and converted back to RGB. Hue and saturation are kept, so
// 0 leaves the image unchanged and 100 turns it black.
//
// percent must be within 0-100.
func AdjustBrightness(src *Raster, percent int) (*Raster, error) {
	if percent < 0 || percent > 100 {
		return nil, fmt.Errorf("%w: brightness %d outside 0-100", ErrInvalidParameter, percent)
	}
	if percent == 0 {
		return src.Clone(), nil
	}

	factor := 1 - float64(percent)/100
	w, h := src.Width(), src.Height()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			in := src.pix.Pix[y*src.pix.Stride : y*src.pix.Stride+w*4]
			out := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
			for i := 0; i < len(in); i += 4 {
				c := colorful.Color{
					R: float64(in[i]) / 255,
					G: float64(in[i+1]) / 255,
					B: float64(in[i+2]) / 255,
				}
				hue, sat, val := c.Hsv()
				out[i], out[i+1], out[i+2] = colorful.Hsv(hue, sat, val*factor).Clamped().RGB255()
				out[i+3] = 0xff
			}
		}
	})

	return &Raster{pix: dst}, nil
}
