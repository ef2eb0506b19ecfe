// Package source acquires rasters from outside the process: image files on
// disk and single frames from a camera.
//
// Both sources make exactly one attempt. A failure is reported to the caller
// wrapped in ErrFile or ErrDeviceUnavailable and no retry is performed.
//
// Camera access goes through a FrameGrabber. Binaries built with the "gocv"
// tag use OpenCV (gocv.io/x/gocv); other builds get a grabber that always
// reports ErrDeviceUnavailable.
package source
