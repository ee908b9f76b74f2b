//go:build linux

package inputio

import (
	"fmt"
	"log/slog"

	"github.com/bendahl/uinput"
)

const uinputPath = "/dev/uinput"

// uinputKeyboard is a KeyboardOutput backed by a Linux uinput device.
type uinputKeyboard struct {
	kbd    uinput.Keyboard
	logger *slog.Logger
}

// NewKeyboard creates a virtual keyboard device. deviceName is the name the
// device advertises to the system; empty uses a default.
func NewKeyboard(deviceName string, logger *slog.Logger) (KeyboardOutput, error) {
	if deviceName == "" {
		deviceName = "pamiq-io virtual keyboard"
	}
	if logger == nil {
		logger = slog.Default()
	}

	kbd, err := uinput.CreateKeyboard(uinputPath, []byte(deviceName))
	if err != nil {
		return nil, fmt.Errorf("inputio: create virtual keyboard: %w", err)
	}

	logger.Debug("virtual keyboard created", "name", deviceName)
	return &uinputKeyboard{kbd: kbd, logger: logger}, nil
}

func (k *uinputKeyboard) Press(key Key) error {
	if err := k.kbd.KeyDown(int(key)); err != nil {
		return fmt.Errorf("inputio: press key %d: %w", key, err)
	}
	return nil
}

func (k *uinputKeyboard) Release(key Key) error {
	if err := k.kbd.KeyUp(int(key)); err != nil {
		return fmt.Errorf("inputio: release key %d: %w", key, err)
	}
	return nil
}

func (k *uinputKeyboard) Tap(key Key) error {
	if err := k.kbd.KeyPress(int(key)); err != nil {
		return fmt.Errorf("inputio: tap key %d: %w", key, err)
	}
	return nil
}

func (k *uinputKeyboard) Close() error {
	if err := k.kbd.Close(); err != nil {
		k.logger.Error("failed to destroy virtual keyboard", "error", err)
		return fmt.Errorf("inputio: close virtual keyboard: %w", err)
	}
	return nil
}

// uinputMouse is a MouseOutput backed by a Linux uinput device.
type uinputMouse struct {
	mouse  uinput.Mouse
	logger *slog.Logger
}

// NewMouse creates a virtual mouse device.
func NewMouse(deviceName string, logger *slog.Logger) (MouseOutput, error) {
	if deviceName == "" {
		deviceName = "pamiq-io virtual mouse"
	}
	if logger == nil {
		logger = slog.Default()
	}

	mouse, err := uinput.CreateMouse(uinputPath, []byte(deviceName))
	if err != nil {
		return nil, fmt.Errorf("inputio: create virtual mouse: %w", err)
	}

	logger.Debug("virtual mouse created", "name", deviceName)
	return &uinputMouse{mouse: mouse, logger: logger}, nil
}

func (m *uinputMouse) Move(dx, dy int32) error {
	if err := m.mouse.Move(dx, dy); err != nil {
		return fmt.Errorf("inputio: move pointer: %w", err)
	}
	return nil
}

func (m *uinputMouse) Scroll(delta int32) error {
	if err := m.mouse.Wheel(false, delta); err != nil {
		return fmt.Errorf("inputio: scroll wheel: %w", err)
	}
	return nil
}

func (m *uinputMouse) Press(b Button) error {
	var err error
	switch b {
	case ButtonLeft:
		err = m.mouse.LeftPress()
	case ButtonRight:
		err = m.mouse.RightPress()
	case ButtonMiddle:
		err = m.mouse.MiddlePress()
	default:
		return fmt.Errorf("inputio: unknown button %d", b)
	}
	if err != nil {
		return fmt.Errorf("inputio: press %s button: %w", b, err)
	}
	return nil
}

func (m *uinputMouse) Release(b Button) error {
	var err error
	switch b {
	case ButtonLeft:
		err = m.mouse.LeftRelease()
	case ButtonRight:
		err = m.mouse.RightRelease()
	case ButtonMiddle:
		err = m.mouse.MiddleRelease()
	default:
		return fmt.Errorf("inputio: unknown button %d", b)
	}
	if err != nil {
		return fmt.Errorf("inputio: release %s button: %w", b, err)
	}
	return nil
}

func (m *uinputMouse) Click(b Button) error {
	var err error
	switch b {
	case ButtonLeft:
		err = m.mouse.LeftClick()
	case ButtonRight:
		err = m.mouse.RightClick()
	case ButtonMiddle:
		err = m.mouse.MiddleClick()
	default:
		return fmt.Errorf("inputio: unknown button %d", b)
	}
	if err != nil {
		return fmt.Errorf("inputio: click %s button: %w", b, err)
	}
	return nil
}

func (m *uinputMouse) Close() error {
	if err := m.mouse.Close(); err != nil {
		m.logger.Error("failed to destroy virtual mouse", "error", err)
		return fmt.Errorf("inputio: close virtual mouse: %w", err)
	}
	return nil
}
