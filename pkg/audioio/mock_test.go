package audioio

import (
	"errors"
	"math"
	"testing"
)

func TestMockSource_Read(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrameSize = 256
	cfg.Channels = 2

	src := NewMockSource(cfg, nil)
	defer src.Close()

	samples, err := src.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(samples) != 256*2 {
		t.Errorf("Expected %d samples, got %d", 256*2, len(samples))
	}
	for i, s := range samples {
		if s != 0 {
			t.Fatalf("Default mock should be silent, sample %d is %v", i, s)
		}
	}

	if src.Reads() != 1 {
		t.Errorf("Expected 1 completed read, got %d", src.Reads())
	}
}

func TestMockSource_SineWave(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrameSize = 4410 // 100ms at 44.1kHz

	src := NewMockSource(cfg, nil, WithSineWave(440, 0.5))
	defer src.Close()

	samples, err := src.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	// A 0.5-amplitude sine has RMS near 0.5/sqrt(2).
	got := RMS(samples)
	want := 0.5 / math.Sqrt2
	if math.Abs(got-want) > 0.01 {
		t.Errorf("Expected RMS near %.3f, got %.3f", want, got)
	}

	var peak float32
	for _, s := range samples {
		if s > peak {
			peak = s
		}
	}
	if peak < 0.45 || peak > 0.55 {
		t.Errorf("Expected peak near 0.5, got %v", peak)
	}
}

func TestMockSource_ReadAfterClose(t *testing.T) {
	src := NewMockSource(DefaultConfig(), nil)

	if err := src.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := src.Read(); !errors.Is(err, ErrStreamClosed) {
		t.Fatalf("Expected ErrStreamClosed, got %v", err)
	}
}

func TestMockSink_Write(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Channels = 2

	sink := NewMockSink(cfg, nil)
	defer sink.Close()

	if err := sink.Write([]float32{0.1, 0.2, 0.3, 0.4}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	written := sink.Written()
	if len(written) != 4 {
		t.Fatalf("Expected 4 samples written, got %d", len(written))
	}
	if written[2] != 0.3 {
		t.Errorf("Expected sample 0.3, got %v", written[2])
	}
}

func TestMockSink_RejectsPartialFrames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Channels = 2

	sink := NewMockSink(cfg, nil)
	defer sink.Close()

	// Three samples is not a whole number of stereo frames.
	err := sink.Write([]float32{0.1, 0.2, 0.3})
	if !errors.Is(err, ErrBadSampleCount) {
		t.Fatalf("Expected ErrBadSampleCount, got %v", err)
	}
}

func TestMockSink_WriteAfterClose(t *testing.T) {
	sink := NewMockSink(DefaultConfig(), nil)

	if err := sink.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := sink.Write([]float32{0}); !errors.Is(err, ErrStreamClosed) {
		t.Fatalf("Expected ErrStreamClosed, got %v", err)
	}
}

func TestNewSource_MockBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = BackendMock

	src, err := NewSource(cfg, nil)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}
	defer src.Close()

	if src.Name() != "mock" {
		t.Errorf("Expected mock backend, got %s", src.Name())
	}
	if src.SampleRate() != cfg.SampleRate {
		t.Errorf("Expected sample rate %d, got %d", cfg.SampleRate, src.SampleRate())
	}
}

func TestNewSink_UnsupportedBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = "pulseaudio"

	if _, err := NewSink(cfg, nil); !errors.Is(err, ErrUnsupportedBackend) {
		t.Fatalf("Expected ErrUnsupportedBackend, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should validate: %v", err)
	}

	bad := DefaultConfig()
	bad.SampleRate = 0
	if err := bad.Validate(); err == nil {
		t.Error("Expected error for zero sample rate")
	}

	bad = DefaultConfig()
	bad.FrameSize = -1
	if err := bad.Validate(); err == nil {
		t.Error("Expected error for negative frame size")
	}
}
