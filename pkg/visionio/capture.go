package visionio

import (
	"fmt"
	"log/slog"
)

// DeviceSource is a Source backed by a Device. It owns the device
// exclusively: construct with NewSource or OpenCamera, release with Close.
//
// Frames come off the device in reverse channel order (blue-green-red for
// color devices); Read reorders them to natural RGB(A) before returning.
type DeviceSource struct {
	dev    Device
	cfg    Config
	logger *slog.Logger
	closed bool
}

// NewSource wraps an already-open device. The source takes ownership of the
// device; the caller must not use it afterwards.
//
// The desired width, height and fps are applied in that order. Applying a
// property is best effort: a failure is logged and the source continues with
// whatever the device negotiated.
func NewSource(dev Device, cfg Config, logger *slog.Logger) (*DeviceSource, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("visionio: invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &DeviceSource{
		dev:    dev,
		cfg:    cfg,
		logger: logger,
	}
	s.configure()
	return s, nil
}

// configure applies the desired capture properties to the device.
func (s *DeviceSource) configure() {
	s.apply(FrameWidth, float64(s.cfg.Width))
	s.apply(FrameHeight, float64(s.cfg.Height))
	s.apply(FrameRate, s.cfg.FPS)
}

func (s *DeviceSource) apply(p Property, want float64) {
	ok := s.dev.Set(p, want)
	if got := s.dev.Get(p); !ok || got != want {
		s.logger.Warn("failed to set camera property",
			"property", p.String(),
			"requested", want,
			"actual", got,
		)
	}
}

// Width returns the current frame width as reported by the device.
func (s *DeviceSource) Width() int {
	return int(s.dev.Get(FrameWidth))
}

// Height returns the current frame height as reported by the device.
func (s *DeviceSource) Height() int {
	return int(s.dev.Get(FrameHeight))
}

// FPS returns the current frame rate as reported by the device.
func (s *DeviceSource) FPS() float64 {
	return s.dev.Get(FrameRate)
}

// Channels returns the configured number of color channels.
func (s *DeviceSource) Channels() int {
	return s.cfg.Channels
}

// Read returns the next frame in RGB(A) channel order.
//
// Grabs are retried up to Config.ReadRetries times; when the budget is
// exhausted the error wraps ErrCaptureFailed. A frame whose channel count
// does not match the configured count produces an error wrapping
// ErrChannelMismatch without retrying.
func (s *DeviceSource) Read() (Frame, error) {
	if s.closed {
		return Frame{}, ErrDeviceClosed
	}

	for i := 1; i <= s.cfg.ReadRetries; i++ {
		frame, ok := s.dev.Grab()
		if !ok {
			s.logger.Warn("failed to read capture frame, retrying",
				"attempt", i,
				"max_attempts", s.cfg.ReadRetries,
			)
			continue
		}

		swapChannels(frame)

		if frame.Channels != s.cfg.Channels {
			return Frame{}, fmt.Errorf(
				"%w: captured frame has %d channels, but expected %d channels",
				ErrChannelMismatch, frame.Channels, s.cfg.Channels,
			)
		}
		return frame, nil
	}

	return Frame{}, fmt.Errorf("%w after %d attempts", ErrCaptureFailed, s.cfg.ReadRetries)
}

// swapChannels reorders a frame from the device-native reverse channel order
// to natural order by swapping channels 0 and 2 in place. Channel 1 and any
// alpha channel are untouched. Grayscale frames pass through.
func swapChannels(f Frame) {
	if f.Channels < 3 {
		return
	}
	for i := 0; i < len(f.Pix); i += f.Channels {
		f.Pix[i], f.Pix[i+2] = f.Pix[i+2], f.Pix[i]
	}
}

// Close releases the underlying device. Release errors are logged and
// returned. Close is idempotent.
func (s *DeviceSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.dev.Close(); err != nil {
		s.logger.Error("failed to release capture device", "error", err)
		return fmt.Errorf("visionio: release device: %w", err)
	}
	return nil
}
