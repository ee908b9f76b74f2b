// Package inputio provides virtual keyboard and mouse output devices.
//
// On Linux the implementations create uinput devices, so injected events are
// indistinguishable from real hardware input to the rest of the system.
// Mock implementations record events for tests and other platforms.
package inputio

import "io"

// Key identifies a keyboard key using Linux input event codes.
type Key int

// Key codes from the Linux input-event-codes table.
const (
	KeyEsc       Key = 1
	Key1         Key = 2
	Key2         Key = 3
	Key3         Key = 4
	Key4         Key = 5
	Key5         Key = 6
	Key6         Key = 7
	Key7         Key = 8
	Key8         Key = 9
	Key9         Key = 10
	Key0         Key = 11
	KeyMinus     Key = 12
	KeyEqual     Key = 13
	KeyBackspace Key = 14
	KeyTab       Key = 15
	KeyQ         Key = 16
	KeyW         Key = 17
	KeyE         Key = 18
	KeyR         Key = 19
	KeyT         Key = 20
	KeyY         Key = 21
	KeyU         Key = 22
	KeyI         Key = 23
	KeyO         Key = 24
	KeyP         Key = 25
	KeyEnter     Key = 28
	KeyLeftCtrl  Key = 29
	KeyA         Key = 30
	KeyS         Key = 31
	KeyD         Key = 32
	KeyF         Key = 33
	KeyG         Key = 34
	KeyH         Key = 35
	KeyJ         Key = 36
	KeyK         Key = 37
	KeyL         Key = 38
	KeyLeftShift Key = 42
	KeyZ         Key = 44
	KeyX         Key = 45
	KeyC         Key = 46
	KeyV         Key = 47
	KeyB         Key = 48
	KeyN         Key = 49
	KeyM         Key = 50
	KeyLeftAlt   Key = 56
	KeySpace     Key = 57
	KeyF1        Key = 59
	KeyF2        Key = 60
	KeyF3        Key = 61
	KeyF4        Key = 62
	KeyF5        Key = 63
	KeyF6        Key = 64
	KeyF7        Key = 65
	KeyF8        Key = 66
	KeyF9        Key = 67
	KeyF10       Key = 68
	KeyF11       Key = 87
	KeyF12       Key = 88
	KeyUp        Key = 103
	KeyLeft      Key = 105
	KeyRight     Key = 106
	KeyDown      Key = 108
)

// KeyboardOutput simulates keyboard input.
type KeyboardOutput interface {
	// Press pushes a key down. It stays down until Release.
	Press(key Key) error

	// Release lets a key up.
	Release(key Key) error

	// Tap presses and releases a key.
	Tap(key Key) error

	// Close destroys the virtual device.
	io.Closer
}
