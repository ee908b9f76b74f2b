package audioio

import "io"

// Sink plays audio to a speaker or other output device.
type Sink interface {
	// Write queues interleaved float32 samples for playback. The sample
	// count must be a whole number of frames for the configured channel
	// count; values are expected in [-1, 1].
	Write(samples []float32) error

	// Flush blocks until all queued audio has been played.
	Flush() error

	// SampleRate returns the sample rate in Hz.
	SampleRate() int

	// Channels returns the number of audio channels.
	Channels() int

	// Name returns the backend name (e.g., "miniaudio", "mock").
	Name() string

	// Close stops playback and releases the device.
	io.Closer
}
