//go:build !linux

package inputio

import "log/slog"

// NewKeyboard is not available on this platform.
func NewKeyboard(deviceName string, logger *slog.Logger) (KeyboardOutput, error) {
	return nil, ErrUnsupported
}

// NewMouse is not available on this platform.
func NewMouse(deviceName string, logger *slog.Logger) (MouseOutput, error) {
	return nil, ErrUnsupported
}
