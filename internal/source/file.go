package source

import (
	"errors"
	"fmt"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	dimaging "github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WEBP decoder

	"github.com/ironsheep/image-edit-mcp/internal/imaging"
)

// ErrFile is returned when an image file cannot be read or decoded.
var ErrFile = errors.New("image file unreadable")

// SupportedExtensions lists the file extensions offered to users. Any file
// whose content one of the registered decoders understands is accepted.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// LoadFile reads and decodes the image at path.
//
// EXIF orientation in JPEG files is applied, so the raster appears the way a
// photo viewer would show it. Every failure wraps ErrFile.
func LoadFile(path string) (*imaging.Raster, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrFile)
	}

	img, err := dimaging.Open(path, dimaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFile, path, err)
	}

	r, err := imaging.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFile, path, err)
	}
	return r, nil
}
