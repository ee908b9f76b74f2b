package audioio

import (
	"math"
	"testing"
)

func TestResample_SameRate(t *testing.T) {
	samples := []float32{0.1, 0.2, 0.3}
	result := Resample(samples, 1, 44100, 44100)

	if len(result) != 3 {
		t.Fatalf("Expected 3 samples, got %d", len(result))
	}
	if result[1] != 0.2 {
		t.Errorf("Samples should pass through unchanged, got %v", result)
	}
}

func TestResample_Downsample(t *testing.T) {
	// One second of mono audio at 48kHz down to 16kHz.
	samples := make([]float32, 48000)
	result := Resample(samples, 1, 48000, 16000)

	if len(result) != 16000 {
		t.Errorf("Expected 16000 samples, got %d", len(result))
	}
}

func TestResample_Upsample(t *testing.T) {
	samples := make([]float32, 16000)
	result := Resample(samples, 1, 16000, 48000)

	if len(result) != 48000 {
		t.Errorf("Expected 48000 samples, got %d", len(result))
	}
}

func TestResample_Interpolates(t *testing.T) {
	// Doubling the rate of a ramp should land midpoints between samples.
	samples := []float32{0, 1, 0, -1}
	result := Resample(samples, 1, 100, 200)

	if len(result) != 8 {
		t.Fatalf("Expected 8 samples, got %d", len(result))
	}
	if math.Abs(float64(result[1]-0.5)) > 1e-6 {
		t.Errorf("Expected interpolated 0.5, got %v", result[1])
	}
}

func TestResample_StereoKeepsChannelsSeparate(t *testing.T) {
	// Left channel constant 1, right channel constant -1.
	samples := make([]float32, 200)
	for i := 0; i < 100; i++ {
		samples[i*2] = 1
		samples[i*2+1] = -1
	}

	result := Resample(samples, 2, 48000, 24000)
	if len(result) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(result))
	}
	for i := 0; i < len(result)/2; i++ {
		if result[i*2] != 1 || result[i*2+1] != -1 {
			t.Fatalf("Channels bled at frame %d: %v %v", i, result[i*2], result[i*2+1])
		}
	}
}

func TestResample_Empty(t *testing.T) {
	if got := Resample(nil, 1, 48000, 16000); len(got) != 0 {
		t.Errorf("Expected empty result, got %d samples", len(got))
	}
}

