package promo

import (
	"context"
	"sync"

	"github.com/minjaeyoo/shopcore-backend/pkg/logger"
)

// Client is one connected notification subscriber.
type Client struct {
	ID     string
	Events chan Event
}

// Hub fans promotion events out to subscribed view-layer clients.
type Hub struct {
	logg *logger.Logger

	mu      sync.RWMutex
	clients map[string]*Client
}

// NewHub builds an empty hub.
func NewHub(logg *logger.Logger) *Hub {
	return &Hub{
		logg:    logg,
		clients: make(map[string]*Client),
	}
}

// Register adds a subscriber and returns it for streaming.
func (h *Hub) Register(clientID string) *Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	c := &Client{
		ID:     clientID,
		Events: make(chan Event, 16),
	}
	h.clients[clientID] = c
	if h.logg != nil {
		ctx := h.logg.WithField(context.Background(), "client_id", clientID)
		ctx = h.logg.WithField(ctx, "total_clients", len(h.clients))
		h.logg.Info(ctx, "event client connected")
	}
	return c
}

// Unregister removes a subscriber and closes its channel.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, ok := h.clients[clientID]; ok {
		close(c.Events)
		delete(h.clients, clientID)
		if h.logg != nil {
			ctx := h.logg.WithField(context.Background(), "client_id", clientID)
			h.logg.Info(ctx, "event client disconnected")
		}
	}
}

// Broadcast delivers the event to every subscriber, dropping it for
// clients whose buffer is full.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		select {
		case c.Events <- event:
		default:
			if h.logg != nil {
				ctx := h.logg.WithField(context.Background(), "client_id", c.ID)
				h.logg.Warn(ctx, "event dropped for slow client")
			}
		}
	}
}

// Run consumes the scheduler event stream until the stream closes or the
// context is canceled.
func (h *Hub) Run(ctx context.Context, events <-chan Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			h.Broadcast(event)
		}
	}
}
