// Package dashboard serves live call monitoring to operators: a websocket
// hub fanning out call events, the call history API and call controls.
package dashboard

import (
	"context"
	"encoding/json"
	"sync"

	"karma-server/internal/observability"
)

const broadcastBuffer = 256

// Event is the envelope for every message exchanged with viewers.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

func encodeEvent(eventType string, data any) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Event{Type: eventType, Data: payload})
}

// Hub maintains the set of connected viewers and broadcasts events to them.
type Hub struct {
	clients    map[*Viewer]bool
	broadcast  chan []byte
	register   chan *Viewer
	unregister chan *Viewer
	done       chan struct{}

	mu     sync.RWMutex
	logger *observability.Logger
}

func NewHub(logger *observability.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Viewer]bool),
		broadcast:  make(chan []byte, broadcastBuffer),
		register:   make(chan *Viewer),
		unregister: make(chan *Viewer),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run owns the viewer set until ctx is cancelled. It should be called in a goroutine.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for v := range h.clients {
				delete(h.clients, v)
				close(v.send)
			}
			h.mu.Unlock()
			return

		case v := <-h.register:
			h.mu.Lock()
			h.clients[v] = true
			count := len(h.clients)
			h.mu.Unlock()
			h.logger.Metrics(ctx, observability.MetricField{Key: "dashboard_viewers", Value: count})

		case v := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[v]; ok {
				delete(h.clients, v)
				close(v.send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			h.logger.Metrics(ctx, observability.MetricField{Key: "dashboard_viewers", Value: count})

		case msg := <-h.broadcast:
			h.mu.Lock()
			for v := range h.clients {
				select {
				case v.send <- msg:
				default:
					// Too slow to keep up.
					delete(h.clients, v)
					close(v.send)
					h.logger.Warn(ctx, "dropped slow dashboard viewer")
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends an event to every connected viewer. It never blocks; the
// event is dropped when the hub is backed up.
func (h *Hub) Broadcast(eventType string, data any) {
	ctx := observability.WithFields(context.Background(), observability.Field{Key: "event_type", Value: eventType})

	msg, err := encodeEvent(eventType, data)
	if err != nil {
		h.logger.Error(ctx, "failed to encode dashboard event", err)
		return
	}

	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn(ctx, "dashboard broadcast channel full, dropping event")
	}
}

// ClientCount returns the number of connected viewers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) add(ctx context.Context, v *Viewer) bool {
	select {
	case h.register <- v:
		return true
	case <-h.done:
		return false
	case <-ctx.Done():
		return false
	}
}

func (h *Hub) remove(v *Viewer) {
	select {
	case h.unregister <- v:
	case <-h.done:
	}
}
