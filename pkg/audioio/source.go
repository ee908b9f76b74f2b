package audioio

import "io"

// Source captures audio from a microphone or other input device.
type Source interface {
	// Read returns the next period of audio, blocking until enough samples
	// have been captured. The result holds FrameSize()*Channels()
	// interleaved samples normalized to [-1, 1].
	Read() ([]float32, error)

	// SampleRate returns the sample rate in Hz.
	SampleRate() int

	// Channels returns the number of audio channels.
	Channels() int

	// FrameSize returns the number of frames returned by each Read.
	FrameSize() int

	// Name returns the backend name (e.g., "miniaudio", "mock").
	Name() string

	// Close stops capture and releases the device.
	io.Closer
}
