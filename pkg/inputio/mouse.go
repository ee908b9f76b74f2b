package inputio

import (
	"errors"
	"io"
)

// ErrUnsupported is returned by device constructors on platforms without
// virtual input support.
var ErrUnsupported = errors.New("inputio: virtual input devices require linux uinput")

// Button identifies a mouse button.
type Button int

const (
	// ButtonLeft is the left mouse button.
	ButtonLeft Button = iota
	// ButtonRight is the right mouse button.
	ButtonRight
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// MouseOutput simulates mouse input.
type MouseOutput interface {
	// Move moves the pointer by a relative offset in pixels.
	// Positive dx moves right, positive dy moves down.
	Move(dx, dy int32) error

	// Scroll turns the vertical wheel. Positive delta scrolls up.
	Scroll(delta int32) error

	// Press pushes a button down. It stays down until Release.
	Press(b Button) error

	// Release lets a button up.
	Release(b Button) error

	// Click presses and releases a button.
	Click(b Button) error

	// Close destroys the virtual device.
	io.Closer
}
