package audioio

import "math"

// Helpers for interleaved float32 sample buffers. The recording and
// playback commands use these to match channel layouts between WAV
// files and devices and to report capture levels.

// MonoToStereo duplicates mono samples to stereo.
func MonoToStereo(samples []float32) []float32 {
	stereo := make([]float32, len(samples)*2)
	for i, s := range samples {
		stereo[i*2] = s
		stereo[i*2+1] = s
	}
	return stereo
}

// StereoToMono averages stereo samples to mono.
func StereoToMono(samples []float32) []float32 {
	mono := make([]float32, len(samples)/2)
	for i := range mono {
		mono[i] = (samples[i*2] + samples[i*2+1]) / 2
	}
	return mono
}

// RMS calculates the root mean square of samples, a value in [0, 1] for
// normalized audio.
func RMS(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sum float64
	for _, s := range samples {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(len(samples)))
}
