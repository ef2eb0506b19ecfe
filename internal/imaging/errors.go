package imaging

import "errors"

var (
	// ErrNoImageLoaded is returned when an operation is requested before any
	// raster has been loaded. Callers treat it as a no-op, not a failure.
	ErrNoImageLoaded = errors.New("no image loaded")

	// ErrInvalidParameter marks a parameter that is malformed or outside its
	// declared bounds. The operation is not applied.
	ErrInvalidParameter = errors.New("invalid parameter")
)
