package hub

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// newTestClient builds a client without a websocket connection so the
// hub's bookkeeping can be exercised directly.
func newTestClient(buffer int) *Client {
	return &Client{
		id:   uuid.NewString(),
		send: make(chan Message, buffer),
	}
}

func waitForCount(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("Expected %d clients, got %d", want, h.ClientCount())
}

func TestHub_RegisterUnregister(t *testing.T) {
	h := New("test", nil)
	go h.Run()

	c := newTestClient(1)
	h.register <- c
	waitForCount(t, h, 1)

	h.unregister <- c
	waitForCount(t, h, 0)

	if _, ok := <-c.send; ok {
		t.Errorf("Expected send channel to be closed after unregister")
	}
}

func TestHub_BroadcastDelivers(t *testing.T) {
	h := New("test", nil)
	go h.Run()

	c := newTestClient(4)
	h.register <- c
	waitForCount(t, h, 1)

	h.BroadcastBinary([]byte("frame"))

	select {
	case msg := <-c.send:
		if msg.Type != BinaryMessage {
			t.Errorf("Expected binary message, got type %d", msg.Type)
		}
		if string(msg.Data) != "frame" {
			t.Errorf("Expected payload %q, got %q", "frame", msg.Data)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for broadcast")
	}
}

func TestHub_BroadcastJSON(t *testing.T) {
	h := New("test", nil)
	go h.Run()

	c := newTestClient(4)
	h.register <- c
	waitForCount(t, h, 1)

	if err := h.BroadcastJSON(map[string]int{"level": 3}); err != nil {
		t.Fatalf("BroadcastJSON failed: %v", err)
	}

	select {
	case msg := <-c.send:
		if msg.Type != JSONMessage {
			t.Errorf("Expected JSON message, got type %d", msg.Type)
		}
		if string(msg.Data) != `{"level":3}` {
			t.Errorf("Unexpected payload: %s", msg.Data)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for broadcast")
	}
}

func TestHub_EvictsSlowClient(t *testing.T) {
	h := New("test", nil)
	go h.Run()

	fast := newTestClient(16)
	slow := newTestClient(1)
	h.register <- fast
	h.register <- slow
	waitForCount(t, h, 2)

	// The second message overflows the slow client's buffer.
	h.BroadcastBinary([]byte("one"))
	h.BroadcastBinary([]byte("two"))
	waitForCount(t, h, 1)

	<-slow.send
	if _, ok := <-slow.send; ok {
		t.Errorf("Expected evicted client's send channel to be closed")
	}

	if got := len(fast.send); got != 2 {
		t.Errorf("Expected fast client to hold 2 messages, got %d", got)
	}
}

// Eviction writes to the client map while ClientCount reads it from
// another goroutine, as the viewer's capture loop does every tick. Run
// with -race.
func TestHub_ClientCountDuringEviction(t *testing.T) {
	h := New("test", nil)
	go h.Run()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			// Unbuffered send channel with no reader, so every
			// broadcast that reaches the client evicts it.
			h.register <- newTestClient(0)
			h.BroadcastBinary([]byte{byte(i)})
		}
	}()

	for {
		select {
		case <-done:
			// Flush out any client whose registration landed after
			// the last broadcast.
			deadline := time.Now().Add(2 * time.Second)
			for h.ClientCount() != 0 {
				if time.Now().After(deadline) {
					t.Fatalf("Expected all clients evicted, %d remain", h.ClientCount())
				}
				h.BroadcastBinary([]byte("flush"))
				time.Sleep(time.Millisecond)
			}
			return
		default:
			h.ClientCount()
		}
	}
}
