// Command vision-capture grabs a single frame from a camera and saves it
// as a PNG file.
package main

import (
	"flag"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pamiq/pamiq-io/internal/config"
	"github.com/pamiq/pamiq-io/internal/log"
	"github.com/pamiq/pamiq-io/pkg/visionio"
)

func main() {
	camera := flag.Int("camera", config.CameraIndex(config.DefaultCameraIndex), "camera device index")
	width := flag.Int("width", 1280, "width of captured frame")
	height := flag.Int("height", 720, "height of captured frame")
	fps := flag.Float64("fps", 30, "fps of capture")
	output := flag.String("output", "captured_frame.png", "output file path")
	flag.Parse()

	log.Init(config.LogLevel())

	cfg := visionio.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.FPS = *fps

	log.Info("initializing camera",
		"index", *camera,
		"requested_width", cfg.Width,
		"requested_height", cfg.Height,
		"requested_fps", cfg.FPS,
	)

	src, err := visionio.OpenCamera(*camera, cfg, log.L())
	if err != nil {
		log.Error("failed to open camera", "error", err)
		os.Exit(1)
	}
	defer src.Close()

	// The device may have negotiated different values.
	log.Info("camera ready",
		"width", src.Width(),
		"height", src.Height(),
		"fps", src.FPS(),
	)

	log.Info("capturing frame")
	frame, err := src.Read()
	if err != nil {
		log.Error("failed to capture frame", "error", err)
		os.Exit(1)
	}

	if dir := filepath.Dir(*output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Error("failed to create output directory", "error", err)
			os.Exit(1)
		}
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Error("failed to create output file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, frame.ToImage()); err != nil {
		log.Error("failed to encode PNG", "error", err)
		os.Exit(1)
	}

	log.Info("frame captured and saved", "path", *output)
}
