// Command audio-play plays a WAV file through the default output device,
// resampling if the device rate differs from the file rate.
package main

import (
	"flag"
	"os"

	"github.com/go-audio/wav"

	"github.com/pamiq/pamiq-io/internal/config"
	"github.com/pamiq/pamiq-io/internal/log"
	"github.com/pamiq/pamiq-io/pkg/audioio"
)

func main() {
	rate := flag.Int("rate", 0, "device sample rate in Hz (0 = use file rate)")
	device := flag.String("device", config.AudioDevice(), "output device name substring")
	flag.Parse()

	log.Init(config.LogLevel())

	if flag.NArg() != 1 {
		log.Error("usage: audio-play [flags] <file.wav>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	samples, fileRate, channels, err := readWAV(path)
	if err != nil {
		log.Error("failed to read WAV", "path", path, "error", err)
		os.Exit(1)
	}

	deviceRate := fileRate
	if *rate > 0 {
		deviceRate = *rate
	}

	if deviceRate != fileRate {
		log.Info("resampling", "from", fileRate, "to", deviceRate)
		samples = audioio.Resample(samples, channels, fileRate, deviceRate)
	}

	cfg := audioio.DefaultConfig()
	cfg.SampleRate = deviceRate
	cfg.Channels = channels
	cfg.Device = *device

	sink, err := audioio.NewSink(cfg, log.L())
	if err != nil {
		log.Error("failed to open audio sink", "error", err)
		os.Exit(1)
	}
	defer sink.Close()

	log.Info("playing", "path", path, "rate", deviceRate, "channels", channels,
		"frames", len(samples)/channels)

	if err := sink.Write(samples); err != nil {
		log.Error("failed to write audio", "error", err)
		os.Exit(1)
	}
	if err := sink.Flush(); err != nil {
		log.Error("failed to drain playback", "error", err)
		os.Exit(1)
	}

	log.Info("playback finished")
}

// readWAV decodes a WAV file into normalized float32 samples.
func readWAV(path string) (samples []float32, rate, channels int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, err
	}

	scale := float32(int(1) << (dec.BitDepth - 1))
	samples = make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float32(v) / scale
	}

	return samples, buf.Format.SampleRate, buf.Format.NumChannels, nil
}
