// Package visionio provides uniform frame capture on top of camera devices.
//
// A Source produces frames in natural RGB(A) channel order regardless of the
// native order of the underlying device, retrying transient grab failures up
// to a configured budget. The gocv backend drives real cameras; any type
// implementing Device can sit behind a Source.
package visionio

import "io"

// Source captures frames from a video device.
type Source interface {
	// Read returns the next frame, blocking until a frame is obtained or
	// the retry budget is exhausted. The returned frame has shape
	// (Height, Width, Channels) with channels in RGB(A) order.
	Read() (Frame, error)

	// Width returns the current frame width as reported by the device.
	Width() int

	// Height returns the current frame height as reported by the device.
	Height() int

	// FPS returns the current frame rate as reported by the device.
	FPS() float64

	// Channels returns the configured number of color channels.
	Channels() int

	// Close releases the underlying device.
	// After Close, the source cannot be used.
	io.Closer
}
