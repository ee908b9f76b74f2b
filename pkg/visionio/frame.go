package visionio

import (
	"image"
	"image/color"
)

// Frame is one still image sample from a video source.
// Pixels are stored interleaved in row-major order, so the sample for
// channel c of the pixel at (x, y) lives at Pix[(y*Width+x)*Channels+c].
type Frame struct {
	Pix      []uint8
	Width    int
	Height   int
	Channels int
}

// At returns the sample for channel c of the pixel at column x, row y.
func (f Frame) At(y, x, c int) uint8 {
	return f.Pix[(y*f.Width+x)*f.Channels+c]
}

// Clone returns a deep copy of the frame.
func (f Frame) Clone() Frame {
	pix := make([]uint8, len(f.Pix))
	copy(pix, f.Pix)
	f.Pix = pix
	return f
}

// ToImage converts the frame to a standard library image.
// Grayscale frames become *image.Gray, color frames *image.NRGBA.
// The frame is assumed to already be in RGB(A) channel order.
func (f Frame) ToImage() image.Image {
	rect := image.Rect(0, 0, f.Width, f.Height)

	if f.Channels == 1 {
		img := image.NewGray(rect)
		copy(img.Pix, f.Pix)
		return img
	}

	img := image.NewNRGBA(rect)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			i := (y*f.Width + x) * f.Channels
			px := color.NRGBA{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2], A: 255}
			if f.Channels == 4 {
				px.A = f.Pix[i+3]
			}
			img.SetNRGBA(x, y, px)
		}
	}
	return img
}
