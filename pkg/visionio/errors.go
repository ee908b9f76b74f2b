package visionio

import "errors"

// Sentinel errors for common error conditions.
var (
	// ErrCaptureFailed is returned when every grab attempt in the retry
	// budget fails.
	ErrCaptureFailed = errors.New("visionio: failed to read capture frame")

	// ErrChannelMismatch is returned when a captured frame's channel count
	// does not match the configured channel count. Retrying cannot change
	// the device's native channel count, so this is fatal.
	ErrChannelMismatch = errors.New("visionio: channel count mismatch")

	// ErrDeviceClosed is returned when reading from a closed source.
	ErrDeviceClosed = errors.New("visionio: device closed")
)
