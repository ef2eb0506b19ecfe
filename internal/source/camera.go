package source

import (
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/image-edit-mcp/internal/imaging"
)

// ErrDeviceUnavailable is returned when the camera cannot be opened or
// produces no frame.
var ErrDeviceUnavailable = errors.New("camera unavailable")

// DefaultDevice is the only camera index that Capture accepts.
const DefaultDevice = 0

// FrameGrabber reads one frame from a capture device.
//
// Grab must acquire the device, read a single frame and release the device
// before returning, on success and on failure alike.
type FrameGrabber interface {
	Grab(device int) (image.Image, error)
}

// Capture grabs a single frame from device and converts it to a raster.
// Every failure, including a missing or empty frame, wraps ErrDeviceUnavailable.
func Capture(g FrameGrabber, device int) (*imaging.Raster, error) {
	if device != DefaultDevice {
		return nil, fmt.Errorf("%w: device %d not supported, only %d", ErrDeviceUnavailable, device, DefaultDevice)
	}
	if g == nil {
		return nil, fmt.Errorf("%w: no capture backend", ErrDeviceUnavailable)
	}

	frame, err := g.Grab(device)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	if frame == nil {
		return nil, fmt.Errorf("%w: device %d returned no frame", ErrDeviceUnavailable, device)
	}

	r, err := imaging.FromImage(frame)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	return r, nil
}
