package inputio

import "testing"

func TestMockKeyboard_PressRelease(t *testing.T) {
	kbd := NewMockKeyboard()
	defer kbd.Close()

	if err := kbd.Press(KeyW); err != nil {
		t.Fatalf("Press failed: %v", err)
	}
	if err := kbd.Release(KeyW); err != nil {
		t.Fatalf("Release failed: %v", err)
	}

	events := kbd.Events()
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0] != (KeyEvent{Key: KeyW, Pressed: true}) {
		t.Errorf("Unexpected first event: %+v", events[0])
	}
	if events[1] != (KeyEvent{Key: KeyW, Pressed: false}) {
		t.Errorf("Unexpected second event: %+v", events[1])
	}
}

func TestMockKeyboard_Tap(t *testing.T) {
	kbd := NewMockKeyboard()
	defer kbd.Close()

	if err := kbd.Tap(KeySpace); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}

	events := kbd.Events()
	if len(events) != 2 {
		t.Fatalf("Tap should record press then release, got %d events", len(events))
	}
	if !events[0].Pressed || events[1].Pressed {
		t.Errorf("Expected press then release, got %+v", events)
	}
}

func TestMockMouse_Events(t *testing.T) {
	mouse := NewMockMouse()
	defer mouse.Close()

	if err := mouse.Move(10, -5); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if err := mouse.Scroll(2); err != nil {
		t.Fatalf("Scroll failed: %v", err)
	}
	if err := mouse.Click(ButtonRight); err != nil {
		t.Fatalf("Click failed: %v", err)
	}

	events := mouse.Events()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	if events[0].Kind != "move" || events[0].DX != 10 || events[0].DY != -5 {
		t.Errorf("Unexpected move event: %+v", events[0])
	}
	if events[1].Kind != "scroll" || events[1].Delta != 2 {
		t.Errorf("Unexpected scroll event: %+v", events[1])
	}
	if events[2].Kind != "click" || events[2].Button != ButtonRight {
		t.Errorf("Unexpected click event: %+v", events[2])
	}
}

func TestButton_String(t *testing.T) {
	if ButtonLeft.String() != "left" || ButtonMiddle.String() != "middle" {
		t.Errorf("Unexpected button names: %s, %s", ButtonLeft, ButtonMiddle)
	}
}
