package inputio

import "sync"

// KeyEvent is one recorded keyboard event.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// MockKeyboard is a KeyboardOutput that records events for tests.
type MockKeyboard struct {
	mu     sync.Mutex
	events []KeyEvent
	closed bool
}

// NewMockKeyboard creates a new mock keyboard.
func NewMockKeyboard() *MockKeyboard {
	return &MockKeyboard{}
}

func (m *MockKeyboard) Press(key Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, KeyEvent{Key: key, Pressed: true})
	return nil
}

func (m *MockKeyboard) Release(key Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, KeyEvent{Key: key, Pressed: false})
	return nil
}

func (m *MockKeyboard) Tap(key Key) error {
	if err := m.Press(key); err != nil {
		return err
	}
	return m.Release(key)
}

func (m *MockKeyboard) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Events returns a copy of the recorded events.
func (m *MockKeyboard) Events() []KeyEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]KeyEvent, len(m.events))
	copy(out, m.events)
	return out
}

// Closed reports whether Close was called.
func (m *MockKeyboard) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// MouseEvent is one recorded mouse event.
type MouseEvent struct {
	// Kind is "move", "scroll", "press", "release" or "click".
	Kind   string
	DX, DY int32
	Delta  int32
	Button Button
}

// MockMouse is a MouseOutput that records events for tests.
type MockMouse struct {
	mu     sync.Mutex
	events []MouseEvent
	closed bool
}

// NewMockMouse creates a new mock mouse.
func NewMockMouse() *MockMouse {
	return &MockMouse{}
}

func (m *MockMouse) record(e MouseEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
}

func (m *MockMouse) Move(dx, dy int32) error {
	m.record(MouseEvent{Kind: "move", DX: dx, DY: dy})
	return nil
}

func (m *MockMouse) Scroll(delta int32) error {
	m.record(MouseEvent{Kind: "scroll", Delta: delta})
	return nil
}

func (m *MockMouse) Press(b Button) error {
	m.record(MouseEvent{Kind: "press", Button: b})
	return nil
}

func (m *MockMouse) Release(b Button) error {
	m.record(MouseEvent{Kind: "release", Button: b})
	return nil
}

func (m *MockMouse) Click(b Button) error {
	m.record(MouseEvent{Kind: "click", Button: b})
	return nil
}

func (m *MockMouse) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Events returns a copy of the recorded events.
func (m *MockMouse) Events() []MouseEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MouseEvent, len(m.events))
	copy(out, m.events)
	return out
}
