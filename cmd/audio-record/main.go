// Command audio-record captures audio from a microphone and writes it to a
// 16-bit PCM WAV file.
package main

import (
	"flag"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/pamiq/pamiq-io/internal/config"
	"github.com/pamiq/pamiq-io/internal/log"
	"github.com/pamiq/pamiq-io/pkg/audioio"
)

func main() {
	seconds := flag.Float64("seconds", 5, "recording duration in seconds")
	rate := flag.Int("rate", 44100, "sample rate in Hz")
	channels := flag.Int("channels", 1, "number of channels")
	device := flag.String("device", config.AudioDevice(), "input device name substring")
	output := flag.String("output", "recording.wav", "output file path")
	flag.Parse()

	log.Init(config.LogLevel())

	cfg := audioio.DefaultConfig()
	cfg.SampleRate = *rate
	cfg.Channels = *channels
	cfg.Device = *device

	src, err := audioio.NewSource(cfg, log.L())
	if err != nil {
		log.Error("failed to open audio source", "error", err)
		os.Exit(1)
	}
	defer src.Close()

	total := int(*seconds * float64(cfg.SampleRate))
	samples := make([]float32, 0, total*cfg.Channels)

	log.Info("recording", "seconds", *seconds, "rate", cfg.SampleRate, "channels", cfg.Channels)

	for len(samples) < total*cfg.Channels {
		period, err := src.Read()
		if err != nil {
			log.Error("failed to read audio", "error", err)
			os.Exit(1)
		}
		samples = append(samples, period...)
		log.Debug("captured period", "samples", len(samples), "rms", audioio.RMS(period))
	}
	samples = samples[:total*cfg.Channels]

	if err := writeWAV(*output, samples, cfg.SampleRate, cfg.Channels); err != nil {
		log.Error("failed to write WAV", "error", err)
		os.Exit(1)
	}

	log.Info("recording saved", "path", *output, "frames", total)
}

// writeWAV saves normalized float32 samples as 16-bit PCM.
func writeWAV(path string, samples []float32, rate, channels int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, channels, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		buf.Data[i] = int(s * 32767)
	}

	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}
