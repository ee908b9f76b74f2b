package audioio

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gen2brain/malgo"
)

// miniaudioSource captures audio through the miniaudio library.
type miniaudioSource struct {
	cfg    Config
	logger *slog.Logger

	ctx    *malgo.AllocatedContext
	device *malgo.Device

	blocks  chan []float32
	pending []float32

	mu     sync.Mutex
	closed bool

	overruns atomic.Int64
}

func newMiniaudioSource(cfg Config, logger *slog.Logger) (*miniaudioSource, error) {
	ctx, err := newMiniaudioContext(logger)
	if err != nil {
		return nil, err
	}

	s := &miniaudioSource{
		cfg:    cfg,
		logger: logger,
		ctx:    ctx,
		blocks: make(chan []float32, 16),
	}

	devCfg := malgo.DefaultDeviceConfig(malgo.Capture)
	devCfg.Capture.Format = malgo.FormatF32
	devCfg.Capture.Channels = uint32(cfg.Channels)
	devCfg.SampleRate = uint32(cfg.SampleRate)
	devCfg.PeriodSizeInFrames = uint32(cfg.blockSize())

	if cfg.Device != "" {
		id, err := findDeviceID(ctx, malgo.Capture, cfg.Device)
		if err != nil {
			closeMiniaudioContext(ctx, logger)
			return nil, err
		}
		devCfg.Capture.DeviceID = id.Pointer()
	}

	callbacks := malgo.DeviceCallbacks{
		Data: func(_, input []byte, frameCount uint32) {
			block := f32FromBytes(input)
			select {
			case s.blocks <- block:
			default:
				// Reader is behind; drop the block.
				s.overruns.Add(1)
			}
		},
	}

	device, err := malgo.InitDevice(ctx.Context, devCfg, callbacks)
	if err != nil {
		closeMiniaudioContext(ctx, logger)
		return nil, fmt.Errorf("audioio: init capture device: %w", err)
	}
	s.device = device

	if err := device.Start(); err != nil {
		device.Uninit()
		closeMiniaudioContext(ctx, logger)
		return nil, fmt.Errorf("audioio: start capture device: %w", err)
	}

	logger.Debug("miniaudio capture started",
		"sample_rate", cfg.SampleRate,
		"channels", cfg.Channels,
		"block_frames", cfg.blockSize(),
	)

	return s, nil
}

// Read blocks until one period of samples has been captured.
func (s *miniaudioSource) Read() ([]float32, error) {
	want := s.cfg.FrameSize * s.cfg.Channels
	out := make([]float32, 0, want)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrStreamClosed
	}
	if len(s.pending) > 0 {
		n := min(len(s.pending), want)
		out = append(out, s.pending[:n]...)
		s.pending = s.pending[n:]
	}
	s.mu.Unlock()

	for len(out) < want {
		block, ok := <-s.blocks
		if !ok {
			return nil, ErrStreamClosed
		}
		n := min(len(block), want-len(out))
		out = append(out, block[:n]...)
		if n < len(block) {
			s.mu.Lock()
			s.pending = append(s.pending, block[n:]...)
			s.mu.Unlock()
		}
	}

	return out, nil
}

func (s *miniaudioSource) SampleRate() int { return s.cfg.SampleRate }
func (s *miniaudioSource) Channels() int   { return s.cfg.Channels }
func (s *miniaudioSource) FrameSize() int  { return s.cfg.FrameSize }
func (s *miniaudioSource) Name() string    { return "miniaudio" }

func (s *miniaudioSource) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.device.Uninit()
	close(s.blocks)
	closeMiniaudioContext(s.ctx, s.logger)

	if n := s.overruns.Load(); n > 0 {
		s.logger.Warn("capture stream dropped blocks", "overruns", n)
	}
	return nil
}

// miniaudioSink plays audio through the miniaudio library.
type miniaudioSink struct {
	cfg    Config
	logger *slog.Logger

	ctx    *malgo.AllocatedContext
	device *malgo.Device

	mu     sync.Mutex
	cond   *sync.Cond
	buf    []float32
	closed bool

	underruns atomic.Int64
}

func newMiniaudioSink(cfg Config, logger *slog.Logger) (*miniaudioSink, error) {
	ctx, err := newMiniaudioContext(logger)
	if err != nil {
		return nil, err
	}

	s := &miniaudioSink{
		cfg:    cfg,
		logger: logger,
		ctx:    ctx,
	}
	s.cond = sync.NewCond(&s.mu)

	devCfg := malgo.DefaultDeviceConfig(malgo.Playback)
	devCfg.Playback.Format = malgo.FormatF32
	devCfg.Playback.Channels = uint32(cfg.Channels)
	devCfg.SampleRate = uint32(cfg.SampleRate)
	devCfg.PeriodSizeInFrames = uint32(cfg.blockSize())

	if cfg.Device != "" {
		id, err := findDeviceID(ctx, malgo.Playback, cfg.Device)
		if err != nil {
			closeMiniaudioContext(ctx, logger)
			return nil, err
		}
		devCfg.Playback.DeviceID = id.Pointer()
	}

	callbacks := malgo.DeviceCallbacks{
		Data: func(output, _ []byte, frameCount uint32) {
			s.fill(output)
		},
	}

	device, err := malgo.InitDevice(ctx.Context, devCfg, callbacks)
	if err != nil {
		closeMiniaudioContext(ctx, logger)
		return nil, fmt.Errorf("audioio: init playback device: %w", err)
	}
	s.device = device

	if err := device.Start(); err != nil {
		device.Uninit()
		closeMiniaudioContext(ctx, logger)
		return nil, fmt.Errorf("audioio: start playback device: %w", err)
	}

	logger.Debug("miniaudio playback started",
		"sample_rate", cfg.SampleRate,
		"channels", cfg.Channels,
	)

	return s, nil
}

// fill copies queued samples into the device buffer, zero-padding on
// underrun. Runs on the audio thread.
func (s *miniaudioSink) fill(output []byte) {
	want := len(output) / 4

	s.mu.Lock()
	n := min(len(s.buf), want)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(output[i*4:], math.Float32bits(s.buf[i]))
	}
	s.buf = s.buf[n:]
	if len(s.buf) == 0 {
		s.cond.Broadcast()
	}
	s.mu.Unlock()

	if n < want {
		for i := n * 4; i < len(output); i++ {
			output[i] = 0
		}
		s.underruns.Add(1)
	}
}

// Write queues samples for playback.
func (s *miniaudioSink) Write(samples []float32) error {
	if len(samples)%s.cfg.Channels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels",
			ErrBadSampleCount, len(samples), s.cfg.Channels)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStreamClosed
	}
	s.buf = append(s.buf, samples...)
	return nil
}

// Flush blocks until the queue has drained.
func (s *miniaudioSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.buf) > 0 && !s.closed {
		s.cond.Wait()
	}
	if s.closed {
		return ErrStreamClosed
	}
	return nil
}

func (s *miniaudioSink) SampleRate() int { return s.cfg.SampleRate }
func (s *miniaudioSink) Channels() int   { return s.cfg.Channels }
func (s *miniaudioSink) Name() string    { return "miniaudio" }

func (s *miniaudioSink) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.cond.Broadcast()
	s.mu.Unlock()

	s.device.Uninit()
	closeMiniaudioContext(s.ctx, s.logger)

	if n := s.underruns.Load(); n > 0 {
		s.logger.Debug("playback stream underran", "underruns", n)
	}
	return nil
}

// newMiniaudioContext initializes a miniaudio context, routing the
// library's log output to slog.
func newMiniaudioContext(logger *slog.Logger) (*malgo.AllocatedContext, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(message string) {
		logger.Debug("miniaudio", "message", strings.TrimSpace(message))
	})
	if err != nil {
		return nil, fmt.Errorf("audioio: init miniaudio context: %w", err)
	}
	return ctx, nil
}

// closeMiniaudioContext tears down a context. Release errors are logged,
// not swallowed silently.
func closeMiniaudioContext(ctx *malgo.AllocatedContext, logger *slog.Logger) {
	if err := ctx.Uninit(); err != nil {
		logger.Error("failed to release miniaudio context", "error", err)
	}
	ctx.Free()
}

// findDeviceID resolves a device name substring to a device ID.
func findDeviceID(ctx *malgo.AllocatedContext, kind malgo.DeviceType, name string) (malgo.DeviceID, error) {
	infos, err := ctx.Devices(kind)
	if err != nil {
		return malgo.DeviceID{}, fmt.Errorf("audioio: enumerate devices: %w", err)
	}
	for _, info := range infos {
		if strings.Contains(info.Name(), name) {
			return info.ID, nil
		}
	}
	return malgo.DeviceID{}, fmt.Errorf("audioio: no device matching %q", name)
}

// f32FromBytes decodes little-endian float32 PCM.
func f32FromBytes(data []byte) []float32 {
	samples := make([]float32, len(data)/4)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return samples
}
