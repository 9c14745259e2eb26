// Package sse fans export progress out to the browser tabs of one user.
package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

const defaultBuffer = 16

// Event is one message for the subscribers of UserID.
type Event struct {
	UserID string
	Event  string
	Data   interface{}
}

// Write encodes e as a Server-Sent Events frame.
func (e Event) Write(w io.Writer) error {
	data, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", e.Event, err)
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Event, data)
	return err
}

// Hub keeps the open streams per user.
type Hub struct {
	mu          sync.RWMutex
	buffer      int
	subscribers map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		buffer:      defaultBuffer,
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe opens a stream for userID. The returned cleanup closes the
// channel and may be called more than once.
func (h *Hub) Subscribe(userID string) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, h.buffer)
	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[chan Event]struct{})
	}
	h.subscribers[userID][ch] = struct{}{}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers[userID], ch)
			close(ch)
			if len(h.subscribers[userID]) == 0 {
				delete(h.subscribers, userID)
			}
		})
	}
	return ch, cleanup
}

// Publish delivers event to every stream of userID without blocking; a
// stream whose buffer is full misses the event.
func (h *Hub) Publish(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers[userID] {
		select {
		case ch <- event:
		default:
			slog.Debug("sse event dropped", "user_id", userID, "event", event.Event)
		}
	}
}

// SubscriberCount returns the number of open streams for a user.
func (h *Hub) SubscriberCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[userID])
}

// TotalSubscribers returns the number of open streams across all users.
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, subs := range h.subscribers {
		total += len(subs)
	}
	return total
}
