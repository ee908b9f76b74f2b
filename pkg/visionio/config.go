package visionio

import "fmt"

// Config holds the desired capture configuration.
// It is fixed at construction; the device may negotiate different values
// for width, height and fps, which the source reports live.
type Config struct {
	// Width is the desired frame width in pixels.
	// Default: 640
	Width int `json:"width"`

	// Height is the desired frame height in pixels.
	// Default: 480
	Height int `json:"height"`

	// FPS is the desired frame rate.
	// Default: 30
	FPS float64 `json:"fps"`

	// Channels is the expected number of color channels per pixel.
	// 1 for grayscale, 3 for RGB, 4 for RGBA. Default: 3
	Channels int `json:"channels"`

	// ReadRetries is the number of grab attempts per Read before giving up.
	// Default: 10
	ReadRetries int `json:"read_retries"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Width:       640,
		Height:      480,
		FPS:         30,
		Channels:    3,
		ReadRetries: 10,
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %v", c.FPS)
	}
	if c.Channels != 1 && c.Channels != 3 && c.Channels != 4 {
		return fmt.Errorf("channels must be 1, 3 or 4, got %d", c.Channels)
	}
	if c.ReadRetries <= 0 {
		return fmt.Errorf("read_retries must be positive, got %d", c.ReadRetries)
	}
	return nil
}
