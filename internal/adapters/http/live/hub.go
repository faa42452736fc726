// Package live pushes session change notifications to websocket clients.
package live

import (
	"context"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"github.com/okian/weekender/pkg/logger"
	"github.com/okian/weekender/pkg/metrics"
)

// Message is one notification sent to every client.
type Message struct {
	Type string    `json:"type"`
	Data any       `json:"data,omitempty"`
	At   time.Time `json:"at"`
}

// Hub maintains the set of active clients and broadcasts messages.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	logger  logger.Logger
	metrics *metrics.Manager
	now     func() time.Time
}

// Option configures a Hub.
type Option func(*Hub)

// WithLogger sets the hub logger.
func WithLogger(l logger.Logger) Option {
	return func(h *Hub) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithMetrics sets the metrics manager. Defaults to the global one.
func WithMetrics(m *metrics.Manager) Option {
	return func(h *Hub) {
		if m != nil {
			h.metrics = m
		}
	}
}

// NewHub creates a new Hub.
func NewHub(opts ...Option) *Hub {
	h := &Hub{
		clients: make(map[*Client]struct{}),
		logger:  logger.Discard(),
		metrics: metrics.Global(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	h.metrics.UpdateLiveClients(n)
}

// Unregister removes a client from the hub and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	n := len(h.clients)
	h.mu.Unlock()
	h.metrics.UpdateLiveClients(n)
}

// Publish broadcasts a notification of msgType. It never blocks on slow
// clients; a full client buffer drops the message for that client.
func (h *Hub) Publish(ctx context.Context, msgType string, data any) {
	h.Broadcast(ctx, Message{Type: msgType, Data: data, At: h.now().UTC()})
}

// Broadcast sends a message to all connected clients.
func (h *Hub) Broadcast(ctx context.Context, msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error(ctx, "marshal broadcast", logger.String("type", msg.Type), logger.Error(err))
		return
	}
	h.metrics.RecordLiveMessage(msg.Type)

	h.mu.RLock()
	defer h.mu.RUnlock()

	dropped := 0
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			dropped++
		}
	}
	if dropped > 0 {
		h.logger.Warn(ctx, "live clients lagging, message dropped",
			logger.String("type", msg.Type), logger.Int("clients", dropped))
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
	h.metrics.UpdateLiveClients(0)
}
