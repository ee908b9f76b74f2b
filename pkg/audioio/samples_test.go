package audioio

import (
	"math"
	"testing"
)

func TestMonoToStereo(t *testing.T) {
	stereo := MonoToStereo([]float32{0.5, -0.5})

	if len(stereo) != 4 {
		t.Fatalf("Expected 4 samples, got %d", len(stereo))
	}
	if stereo[0] != 0.5 || stereo[1] != 0.5 || stereo[2] != -0.5 || stereo[3] != -0.5 {
		t.Errorf("Unexpected stereo expansion: %v", stereo)
	}
}

func TestStereoToMono(t *testing.T) {
	mono := StereoToMono([]float32{1, 0, -1, -1})

	if len(mono) != 2 {
		t.Fatalf("Expected 2 samples, got %d", len(mono))
	}
	if mono[0] != 0.5 || mono[1] != -1 {
		t.Errorf("Unexpected mono mix: %v", mono)
	}
}

func TestRMS(t *testing.T) {
	if got := RMS(nil); got != 0 {
		t.Errorf("RMS of empty input should be 0, got %v", got)
	}

	// Constant 0.5 signal has RMS 0.5.
	samples := []float32{0.5, -0.5, 0.5, -0.5}
	if got := RMS(samples); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("Expected RMS 0.5, got %v", got)
	}
}
