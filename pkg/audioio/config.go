// Package audioio provides cross-platform audio capture and playback.
//
// Sources read normalized float32 samples from an input device, sinks play
// them back. Two backends exist:
//   - miniaudio - real devices on Linux, macOS and Windows
//   - mock - CI/testing without hardware
//
// All calls are synchronous and blocking; a Source or Sink owns its device
// stream from construction until Close.
package audioio

import "fmt"

// Backend represents the audio backend type.
type Backend string

const (
	// BackendAuto automatically selects the best available backend.
	BackendAuto Backend = "auto"
	// BackendMiniaudio uses the miniaudio library for device I/O.
	BackendMiniaudio Backend = "miniaudio"
	// BackendMock uses a mock implementation for testing.
	BackendMock Backend = "mock"
)

// Config holds audio configuration.
type Config struct {
	// Backend specifies which audio backend to use.
	// Default: "auto"
	Backend Backend `json:"backend"`

	// SampleRate is the audio sample rate in Hz.
	// Default: 44100
	SampleRate int `json:"sample_rate"`

	// Channels is the number of audio channels.
	// Default: 1 (mono)
	Channels int `json:"channels"`

	// FrameSize is the number of frames returned by each Source.Read.
	// Default: 1024
	FrameSize int `json:"frame_size"`

	// BlockSize is the device period size in frames.
	// Zero means use FrameSize.
	BlockSize int `json:"block_size"`

	// Device is the device name, or empty for the system default.
	// Matched as a substring against the backend's device names.
	Device string `json:"device"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Backend:    BackendAuto,
		SampleRate: 44100,
		Channels:   1,
		FrameSize:  1024,
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be positive, got %d", c.SampleRate)
	}
	if c.Channels <= 0 {
		return fmt.Errorf("channels must be positive, got %d", c.Channels)
	}
	if c.FrameSize <= 0 {
		return fmt.Errorf("frame_size must be positive, got %d", c.FrameSize)
	}
	if c.BlockSize < 0 {
		return fmt.Errorf("block_size must not be negative, got %d", c.BlockSize)
	}
	return nil
}

// blockSize returns the effective device period size in frames.
func (c *Config) blockSize() int {
	if c.BlockSize > 0 {
		return c.BlockSize
	}
	return c.FrameSize
}
