package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nakamauwu/parcelmate/types"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxFrameSize   = 512
	sendBufferSize = 64
)

// Client is one websocket connection of an authenticated user.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	user types.User
	send chan []byte

	mu     sync.Mutex
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn, user types.User) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		user: user,
		send: make(chan []byte, sendBufferSize),
	}
}

// enqueue queues the payload without blocking.
// It reports false when the queue is full or already closed.
func (c *Client) enqueue(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// Serve joins the user channel and pumps frames until the connection
// is closed or the client is dropped.
func (c *Client) Serve() error {
	if err := c.hub.Join(c); err != nil {
		_ = c.conn.Close()
		return err
	}

	go c.writePump()
	c.readPump()

	return nil
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Leave(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxFrameSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		_ = c.enqueue(c.handleFrame(raw))
	}
}

// handleFrame answers a frame sent by the client.
// Clients are joined to their own channel on connect, a join frame
// can only confirm that and never subscribes to someone else.
func (c *Client) handleFrame(raw []byte) []byte {
	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		return errorEvent("invalid_json")
	}

	switch ev.Type {
	case EventJoin:
		if ev.UserID != "" && ev.UserID != c.user.ID {
			return errorEvent("forbidden")
		}
		return encodeEvent(Event{Type: EventJoined, UserID: c.user.ID})
	}

	return errorEvent("unsupported_type")
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
