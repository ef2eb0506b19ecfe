package imaging

import (
	"fmt"

	"github.com/anthonynsimon/bild/transform"
)

// Resize target bounds, inclusive.
const (
	MinDimension = 10
	MaxDimension = 4000
)

// ValidateDimensions checks a resize target against MinDimension and MaxDimension.
func ValidateDimensions(width, height int) error {
	if width < MinDimension || width > MaxDimension || height < MinDimension || height > MaxDimension {
		return fmt.Errorf("%w: size %dx%d outside %d-%d", ErrInvalidParameter,
			width, height, MinDimension, MaxDimension)
	}
	return nil
}

// Resize resamples src to exactly width x height using bilinear filtering.
// The aspect ratio is not preserved.
func Resize(src *Raster, width, height int) (*Raster, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	return wrap(transform.Resize(src.pix, width, height, transform.Linear)), nil
}
