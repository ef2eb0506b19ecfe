//go:build gocv

package source

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

type gocvGrabber struct{}

// DefaultGrabber returns the OpenCV-backed grabber.
func DefaultGrabber() FrameGrabber {
	return gocvGrabber{}
}

// Grab opens the device, reads one frame and closes the device again.
// OpenCV delivers BGR frames; ToImage converts them to RGB.
func (gocvGrabber) Grab(device int) (image.Image, error) {
	cam, err := gocv.VideoCaptureDevice(device)
	if err != nil {
		return nil, fmt.Errorf("failed to open device %d: %w", device, err)
	}
	defer cam.Close()

	if !cam.IsOpened() {
		return nil, fmt.Errorf("device %d is not open", device)
	}

	frame := gocv.NewMat()
	defer frame.Close()

	if ok := cam.Read(&frame); !ok || frame.Empty() {
		return nil, fmt.Errorf("device %d returned no frame", device)
	}

	img, err := frame.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert frame: %w", err)
	}
	return img, nil
}
