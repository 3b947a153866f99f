// Package realtime keeps the websocket connections of each user
// and pushes their new messages to every one of them.
package realtime

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nakamauwu/parcelmate/types"
)

// Streamer is the source of messages addressed to, or sent by, a user.
type Streamer interface {
	MessageStream(ctx context.Context, actor types.User) (<-chan types.Message, error)
}

type channel struct {
	clients map[*Client]struct{}
	cancel  context.CancelFunc
}

// Hub holds one channel per connected user. A channel subscribes to
// the user's message stream when its first client joins and unsubscribes
// when its last client leaves.
type Hub struct {
	streamer Streamer
	logger   *slog.Logger
	baseCtx  context.Context

	mu       sync.Mutex
	channels map[string]*channel
	clients  int
}

func NewHub(ctx context.Context, streamer Streamer, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Hub{
		streamer: streamer,
		logger:   logger,
		baseCtx:  ctx,
		channels: map[string]*channel{},
	}
}

// Join registers the client in its user channel.
func (h *Hub) Join(c *Client) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch, ok := h.channels[c.user.ID]
	if !ok {
		ctx, cancel := context.WithCancel(h.baseCtx)
		mm, err := h.streamer.MessageStream(ctx, c.user)
		if err != nil {
			cancel()
			return err
		}

		ch = &channel{clients: map[*Client]struct{}{}, cancel: cancel}
		h.channels[c.user.ID] = ch

		go h.forward(c.user.ID, mm)
	}

	if _, ok := ch.clients[c]; !ok {
		ch.clients[c] = struct{}{}
		h.clients++
	}

	return nil
}

// Leave removes the client and closes its send queue.
// It is safe to call more than once.
func (h *Hub) Leave(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.leave(c)
}

func (h *Hub) leave(c *Client) {
	ch, ok := h.channels[c.user.ID]
	if !ok {
		return
	}

	if _, ok := ch.clients[c]; !ok {
		return
	}

	delete(ch.clients, c)
	h.clients--
	c.closeSend()

	if len(ch.clients) == 0 {
		ch.cancel()
		delete(h.channels, c.user.ID)
	}
}

func (h *Hub) forward(userID string, mm <-chan types.Message) {
	for m := range mm {
		h.Deliver(userID, newMessageEvent(m))
	}
}

// Deliver queues the payload on every client of the user.
// Clients with a full queue are dropped, they reconcile on reconnect.
// It returns how many clients got the payload.
func (h *Hub) Deliver(userID string, payload []byte) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch, ok := h.channels[userID]
	if !ok {
		return 0
	}

	var n int
	for c := range ch.clients {
		if c.enqueue(payload) {
			n++
			continue
		}

		h.logger.Warn("dropping slow realtime client", "user_id", userID)
		h.leave(c)
	}

	return n
}

// Len is the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.clients
}

// Users is the number of users with at least one client.
func (h *Hub) Users() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.channels)
}
