// Command vision-view serves a live camera preview in the browser.
// Frames are captured through visionio, JPEG-encoded and pushed to
// websocket clients via the broadcast hub.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/jpeg"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/pamiq/pamiq-io/internal/config"
	"github.com/pamiq/pamiq-io/internal/log"
	"github.com/pamiq/pamiq-io/pkg/hub"
	"github.com/pamiq/pamiq-io/pkg/visionio"
)

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>pamiq-io camera preview</title></head>
<body style="margin:0;background:#111;display:flex;justify-content:center;align-items:center;height:100vh">
<img id="frame" alt="camera"/>
<script>
const img = document.getElementById("frame");
const ws = new WebSocket("ws://" + location.host + "/ws/camera");
ws.binaryType = "blob";
ws.onmessage = (e) => {
  const url = URL.createObjectURL(e.data);
  img.onload = () => URL.revokeObjectURL(url);
  img.src = url;
};
</script>
</body>
</html>`

func main() {
	camera := flag.Int("camera", config.CameraIndex(config.DefaultCameraIndex), "camera device index")
	width := flag.Int("width", 640, "width of captured frames")
	height := flag.Int("height", 480, "height of captured frames")
	fps := flag.Float64("fps", 30, "fps of capture")
	port := flag.String("port", "8080", "http listen port")
	quality := flag.Int("quality", 80, "jpeg quality 1-100")
	flag.Parse()

	log.Init(config.LogLevel())

	cfg := visionio.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.FPS = *fps

	src, err := visionio.OpenCamera(*camera, cfg, log.L())
	if err != nil {
		log.Error("failed to open camera", "error", err)
		os.Exit(1)
	}
	defer src.Close()

	frameHub := hub.New("camera", log.L())
	go frameHub.Run()
	go captureLoop(src, frameHub, *quality)

	app := fiber.New(fiber.Config{
		AppName:               "pamiq-io camera preview",
		DisableStartupMessage: true,
	})

	app.Get("/", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(indexHTML)
	})

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/camera", websocket.New(func(conn *websocket.Conn) {
		hub.NewClient(frameHub, conn).Run()
	}))

	fmt.Printf("🎥 Camera preview: http://localhost:%s\n", *port)
	if err := app.Listen(":" + *port); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// captureLoop reads frames at the camera rate and broadcasts them as JPEG.
func captureLoop(src visionio.Source, frameHub *hub.Hub, quality int) {
	fps := src.FPS()
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Duration(float64(time.Second) / fps))
	defer ticker.Stop()

	opts := &jpeg.Options{Quality: quality}
	var buf bytes.Buffer

	for range ticker.C {
		if frameHub.ClientCount() == 0 {
			continue
		}

		frame, err := src.Read()
		if err != nil {
			log.Error("capture failed, stopping preview", "error", err)
			return
		}

		buf.Reset()
		if err := jpeg.Encode(&buf, frame.ToImage(), opts); err != nil {
			log.Warn("jpeg encode failed", "error", err)
			continue
		}

		data := make([]byte, buf.Len())
		copy(data, buf.Bytes())
		frameHub.BroadcastBinary(data)
	}
}
