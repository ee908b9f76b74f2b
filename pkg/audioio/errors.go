package audioio

import "errors"

// Sentinel errors for common error conditions.
var (
	// ErrStreamClosed is returned when using a closed source or sink.
	ErrStreamClosed = errors.New("audioio: stream closed")

	// ErrBadSampleCount is returned when written samples do not form a
	// whole number of frames for the configured channel count.
	ErrBadSampleCount = errors.New("audioio: sample count not a multiple of channel count")

	// ErrUnsupportedBackend is returned for unknown backend names.
	ErrUnsupportedBackend = errors.New("audioio: unsupported backend")
)
