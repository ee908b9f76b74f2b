package audioio

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
)

// MockSource is a mock audio source for testing.
// It generates synthetic audio (silence or a sine wave) immediately on Read
// rather than pacing itself against a real device clock.
type MockSource struct {
	cfg    Config
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
	reads  int64

	// Synthetic audio generation
	phase     float64
	frequency float64 // Hz, 0 = silence
	amplitude float64 // 0.0 to 1.0
}

// MockSourceOption configures a MockSource.
type MockSourceOption func(*MockSource)

// WithSineWave configures the mock to generate a sine wave.
func WithSineWave(frequency, amplitude float64) MockSourceOption {
	return func(m *MockSource) {
		m.frequency = frequency
		m.amplitude = amplitude
	}
}

// NewMockSource creates a new mock audio source.
func NewMockSource(cfg Config, logger *slog.Logger, opts ...MockSourceOption) *MockSource {
	if logger == nil {
		logger = slog.Default()
	}

	m := &MockSource{
		cfg:       cfg,
		logger:    logger,
		frequency: 0, // Silence by default
		amplitude: 0.5,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Read returns one period of synthetic audio.
func (m *MockSource) Read() ([]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrStreamClosed
	}

	samples := make([]float32, m.cfg.FrameSize*m.cfg.Channels)
	if m.frequency > 0 {
		for i := 0; i < m.cfg.FrameSize; i++ {
			v := float32(m.amplitude * math.Sin(2*math.Pi*m.frequency*m.phase/float64(m.cfg.SampleRate)))
			for ch := 0; ch < m.cfg.Channels; ch++ {
				samples[i*m.cfg.Channels+ch] = v
			}
			m.phase++
			if m.phase >= float64(m.cfg.SampleRate) {
				m.phase = 0
			}
		}
	}

	m.reads++
	return samples, nil
}

// Reads returns the number of completed Read calls.
func (m *MockSource) Reads() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}

func (m *MockSource) SampleRate() int { return m.cfg.SampleRate }
func (m *MockSource) Channels() int   { return m.cfg.Channels }
func (m *MockSource) FrameSize() int  { return m.cfg.FrameSize }

// Name returns "mock".
func (m *MockSource) Name() string { return "mock" }

// Close marks the source closed. Further reads fail with ErrStreamClosed.
func (m *MockSource) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// MockSink is a mock audio sink for testing. It records everything written.
type MockSink struct {
	cfg    Config
	logger *slog.Logger

	mu      sync.Mutex
	closed  bool
	written []float32
}

// NewMockSink creates a new mock audio sink.
func NewMockSink(cfg Config, logger *slog.Logger) *MockSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &MockSink{cfg: cfg, logger: logger}
}

// Write records the samples.
func (m *MockSink) Write(samples []float32) error {
	if len(samples)%m.cfg.Channels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels",
			ErrBadSampleCount, len(samples), m.cfg.Channels)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStreamClosed
	}
	m.written = append(m.written, samples...)
	return nil
}

// Flush is a no-op for the mock.
func (m *MockSink) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStreamClosed
	}
	return nil
}

// Written returns a copy of all samples written so far.
func (m *MockSink) Written() []float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]float32, len(m.written))
	copy(out, m.written)
	return out
}

func (m *MockSink) SampleRate() int { return m.cfg.SampleRate }
func (m *MockSink) Channels() int   { return m.cfg.Channels }

// Name returns "mock".
func (m *MockSink) Name() string { return "mock" }

// Close marks the sink closed. Further writes fail with ErrStreamClosed.
func (m *MockSink) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
