package audioio

// Resample converts interleaved audio from one sample rate to another using
// per-channel linear interpolation. This is a simple resampler suitable for
// speech and demo audio. For higher quality, consider a polyphase filter.
func Resample(samples []float32, channels, fromRate, toRate int) []float32 {
	if fromRate == toRate || len(samples) == 0 {
		return samples
	}

	frames := len(samples) / channels
	ratio := float64(fromRate) / float64(toRate)
	newFrames := int(float64(frames) / ratio)
	if newFrames == 0 {
		return []float32{}
	}

	result := make([]float32, newFrames*channels)

	for i := 0; i < newFrames; i++ {
		srcPos := float64(i) * ratio
		srcIdx := int(srcPos)
		frac := float32(srcPos - float64(srcIdx))

		for ch := 0; ch < channels; ch++ {
			if srcIdx >= frames-1 {
				result[i*channels+ch] = samples[(frames-1)*channels+ch]
			} else {
				s1 := samples[srcIdx*channels+ch]
				s2 := samples[(srcIdx+1)*channels+ch]
				result[i*channels+ch] = s1 + frac*(s2-s1)
			}
		}
	}

	return result
}
