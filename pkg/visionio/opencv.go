package visionio

import (
	"fmt"
	"log/slog"

	"gocv.io/x/gocv"
)

// gocvDevice adapts a gocv.VideoCapture to the Device interface.
// The capture Mat is reused between grabs; Grab hands out copies.
type gocvDevice struct {
	cam *gocv.VideoCapture
	mat gocv.Mat
}

// OpenCamera opens the camera identified by src (a device index or a device
// path / stream URL, anything gocv.OpenVideoCapture accepts) and wraps it in
// a DeviceSource, which becomes the sole owner of the handle.
func OpenCamera(src any, cfg Config, logger *slog.Logger) (*DeviceSource, error) {
	cam, err := gocv.OpenVideoCapture(src)
	if err != nil {
		return nil, fmt.Errorf("visionio: open camera %v: %w", src, err)
	}

	dev := &gocvDevice{cam: cam, mat: gocv.NewMat()}
	s, err := NewSource(dev, cfg, logger)
	if err != nil {
		dev.Close()
		return nil, err
	}
	return s, nil
}

func (d *gocvDevice) Set(p Property, value float64) bool {
	// gocv's Set does not report success; the post-set query in
	// DeviceSource.configure catches values the driver refused.
	d.cam.Set(gocvProp(p), value)
	return true
}

func (d *gocvDevice) Get(p Property) float64 {
	return d.cam.Get(gocvProp(p))
}

func (d *gocvDevice) Grab() (Frame, bool) {
	if !d.cam.Read(&d.mat) || d.mat.Empty() {
		return Frame{}, false
	}

	data := d.mat.ToBytes()
	pix := make([]uint8, len(data))
	copy(pix, data)

	return Frame{
		Pix:      pix,
		Width:    d.mat.Cols(),
		Height:   d.mat.Rows(),
		Channels: d.mat.Channels(),
	}, true
}

func (d *gocvDevice) Close() error {
	merr := d.mat.Close()
	cerr := d.cam.Close()
	if cerr != nil {
		return cerr
	}
	return merr
}

func gocvProp(p Property) gocv.VideoCaptureProperties {
	switch p {
	case FrameWidth:
		return gocv.VideoCaptureFrameWidth
	case FrameHeight:
		return gocv.VideoCaptureFrameHeight
	case FrameRate:
		return gocv.VideoCaptureFPS
	default:
		panic(fmt.Sprintf("visionio: unknown property %d", p))
	}
}
