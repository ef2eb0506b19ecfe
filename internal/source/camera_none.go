//go:build !gocv

package source

import (
	"errors"
	"image"
)

type unavailableGrabber struct{}

// DefaultGrabber returns a grabber that reports every device as unavailable.
// Build with -tags gocv for camera support.
func DefaultGrabber() FrameGrabber {
	return unavailableGrabber{}
}

func (unavailableGrabber) Grab(int) (image.Image, error) {
	return nil, errors.New("built without camera support")
}
