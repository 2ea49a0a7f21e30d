package websocket

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second

	pongWait = 60 * time.Second

	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 64 * 1024
)

// InboundFrame is what clients send. Only Message is trusted; Username and
// Room are informational — the session is already bound to an authenticated
// user and a room resolved from the connection path.
type InboundFrame struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	Room     string `json:"room"`
}

// OutboundFrame is what every subscriber in a room receives.
type OutboundFrame struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// FrameHandler runs the message pipeline for one inbound frame. ReadPump
// calls it synchronously, so one session handles one frame to completion
// before reading the next.
type FrameHandler interface {
	HandleFrame(client *Client, frame *InboundFrame) error
}

// Client is one chat session: a single websocket connection bound to one
// authenticated user and one room for its whole lifetime.
type Client struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Username string
	RoomID   uuid.UUID
	RoomSlug string
	Conn     *websocket.Conn
	Send     chan []byte
	Hub      *Hub
}

func NewClient(hub *Hub, conn *websocket.Conn, userID uuid.UUID, username string, roomID uuid.UUID, roomSlug string) *Client {
	return &Client{
		ID:       uuid.New(),
		UserID:   userID,
		Username: username,
		RoomID:   roomID,
		RoomSlug: roomSlug,
		Conn:     conn,
		Send:     make(chan []byte, 256),
		Hub:      hub,
	}
}

// ReadPump reads frames from the client until the connection drops.
// Malformed frames are dropped without closing the connection; handler
// errors are logged and the connection stays open.
func (c *Client) ReadPump(handler FrameHandler) {
	defer func() {
		c.Hub.Unsubscribe(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket error: %v", err)
			}
			break
		}

		var frame InboundFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			log.Printf("dropping malformed frame from %s: %v", c.Username, err)
			continue
		}
		if frame.Message == "" {
			log.Printf("dropping frame without message from %s", c.Username)
			continue
		}

		if handler != nil {
			if err := handler.HandleFrame(c, &frame); err != nil {
				log.Printf("handle frame from %s: %v", c.Username, err)
			}
		}
	}
}

// WritePump forwards broadcast frames from the Send channel to the
// connection and keeps the connection alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
