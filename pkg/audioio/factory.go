package audioio

import (
	"fmt"
	"log/slog"
)

// NewSource creates a new audio source with the given configuration.
// If cfg.Backend is BackendAuto, the best available backend is selected.
func NewSource(cfg Config, logger *slog.Logger) (Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("audioio: invalid config: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	backend := cfg.Backend
	if backend == BackendAuto {
		backend = BackendMiniaudio
	}

	logger.Info("creating audio source",
		"backend", backend,
		"sample_rate", cfg.SampleRate,
		"channels", cfg.Channels,
		"frame_size", cfg.FrameSize,
	)

	switch backend {
	case BackendMock:
		return NewMockSource(cfg, logger), nil
	case BackendMiniaudio:
		return newMiniaudioSource(cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, backend)
	}
}

// NewSink creates a new audio sink with the given configuration.
// If cfg.Backend is BackendAuto, the best available backend is selected.
func NewSink(cfg Config, logger *slog.Logger) (Sink, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("audioio: invalid config: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	backend := cfg.Backend
	if backend == BackendAuto {
		backend = BackendMiniaudio
	}

	logger.Info("creating audio sink",
		"backend", backend,
		"sample_rate", cfg.SampleRate,
		"channels", cfg.Channels,
	)

	switch backend {
	case BackendMock:
		return NewMockSink(cfg, logger), nil
	case BackendMiniaudio:
		return newMiniaudioSink(cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, backend)
	}
}

// AvailableBackends returns the list of usable backends.
func AvailableBackends() []Backend {
	return []Backend{BackendMiniaudio, BackendMock}
}
