package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub is the room registry: it tracks which clients are subscribed to which
// room and fans broadcast frames out to them. Subscribe, Unsubscribe and
// Broadcast are safe for concurrent use from any number of sessions.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]bool),
	}
}

// Subscribe adds the client to its room's fanout group.
func (h *Hub) Subscribe(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[client.RoomSlug]; !ok {
		h.rooms[client.RoomSlug] = make(map[*Client]bool)
	}
	h.rooms[client.RoomSlug][client] = true

	log.Printf("client %s (user %s) joined room %s", client.ID, client.Username, client.RoomSlug)
}

// Unsubscribe removes the client from its room's fanout group. Safe to call
// more than once; later calls are no-ops.
func (h *Hub) Unsubscribe(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[client.RoomSlug]
	if !ok {
		return
	}
	if !room[client] {
		return
	}

	delete(room, client)
	if len(room) == 0 {
		delete(h.rooms, client.RoomSlug)
	}

	log.Printf("client %s (user %s) left room %s", client.ID, client.Username, client.RoomSlug)
}

// Broadcast delivers the frame to every client currently subscribed to the
// room, including the one that produced it. Broadcasting to a room with no
// subscribers is a no-op. Broadcasts are serialized, so every subscriber
// sees frames enqueued in the same order.
func (h *Hub) Broadcast(roomSlug string, frame OutboundFrame) {
	data, err := json.Marshal(frame)
	if err != nil {
		log.Printf("marshal outbound frame: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.rooms[roomSlug] {
		select {
		case client.Send <- data:
		default:
			log.Printf("client %s send channel full, dropping frame", client.ID)
		}
	}
}

// RoomCount reports how many clients are subscribed to a room.
func (h *Hub) RoomCount(roomSlug string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomSlug])
}
