package websocket

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub, username, roomSlug string) *Client {
	return &Client{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Username: username,
		RoomID:   uuid.New(),
		RoomSlug: roomSlug,
		Send:     make(chan []byte, 8),
		Hub:      hub,
	}
}

func receiveFrame(t *testing.T, c *Client) OutboundFrame {
	t.Helper()

	select {
	case data := <-c.Send:
		var frame OutboundFrame
		require.NoError(t, json.Unmarshal(data, &frame))
		return frame
	default:
		t.Fatalf("client %s received no frame", c.Username)
		return OutboundFrame{}
	}
}

func TestBroadcastReachesAllSubscribersIncludingSender(t *testing.T) {
	hub := NewHub()

	a := newTestClient(hub, "A", "algebra-101")
	b := newTestClient(hub, "B", "algebra-101")
	hub.Subscribe(a)
	hub.Subscribe(b)

	hub.Broadcast("algebra-101", OutboundFrame{Message: "hello", Username: "A"})

	for _, c := range []*Client{a, b} {
		frame := receiveFrame(t, c)
		assert.Equal(t, "hello", frame.Message)
		assert.Equal(t, "A", frame.Username)
	}
}

func TestBroadcastScopedToRoom(t *testing.T) {
	hub := NewHub()

	a := newTestClient(hub, "A", "algebra-101")
	c := newTestClient(hub, "C", "biology-201")
	hub.Subscribe(a)
	hub.Subscribe(c)

	hub.Broadcast("algebra-101", OutboundFrame{Message: "hello", Username: "A"})

	assert.Len(t, a.Send, 1)
	assert.Empty(t, c.Send)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub()

	a := newTestClient(hub, "A", "algebra-101")
	b := newTestClient(hub, "B", "algebra-101")
	hub.Subscribe(a)
	hub.Subscribe(b)

	hub.Unsubscribe(b)
	hub.Broadcast("algebra-101", OutboundFrame{Message: "hello", Username: "A"})

	assert.Len(t, a.Send, 1)
	assert.Empty(t, b.Send)

	// Resubscribing re-adds the client to the fanout group.
	hub.Subscribe(b)
	hub.Broadcast("algebra-101", OutboundFrame{Message: "again", Username: "A"})
	assert.Len(t, b.Send, 1)
}

func TestUnsubscribeIdempotent(t *testing.T) {
	hub := NewHub()

	a := newTestClient(hub, "A", "algebra-101")
	hub.Subscribe(a)

	hub.Unsubscribe(a)
	hub.Unsubscribe(a)

	assert.Zero(t, hub.RoomCount("algebra-101"))
}

func TestBroadcastToEmptyRoomIsNoop(t *testing.T) {
	hub := NewHub()

	hub.Broadcast("no-such-room", OutboundFrame{Message: "hello", Username: "A"})
}

func TestRoomCount(t *testing.T) {
	hub := NewHub()

	a := newTestClient(hub, "A", "algebra-101")
	b := newTestClient(hub, "B", "algebra-101")

	assert.Zero(t, hub.RoomCount("algebra-101"))

	hub.Subscribe(a)
	hub.Subscribe(b)
	assert.Equal(t, 2, hub.RoomCount("algebra-101"))

	hub.Unsubscribe(a)
	assert.Equal(t, 1, hub.RoomCount("algebra-101"))
}
