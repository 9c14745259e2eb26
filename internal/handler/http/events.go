package http

import (
	"net/http"
	"time"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/session"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/handler/http/response"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/sse"
)

const keepaliveInterval = 30 * time.Second

type Subscriber interface {
	Subscribe(userID string) (<-chan sse.Event, func())
}

type EventHandler interface {
	// Stream pushes export progress of the current session as Server-Sent Events
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventHandlerImpl struct {
	hub Subscriber
}

func NewEventHandler(hub Subscriber) EventHandler {
	return &eventHandlerImpl{hub: hub}
}

// Stream handles GET /events
func (h *eventHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok || sess.Subject() == "" {
		response.Unauthorized(w, "Belum login")
		return
	}
	subject := sess.Subject()

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(subject)
	defer cleanup()

	connected := sse.Event{UserID: subject, Event: "connected", Data: map[string]string{"status": "connected"}}
	if err := connected.Write(w); err != nil {
		return
	}
	flusher.Flush()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := event.Write(w); err != nil {
				return
			}
			flusher.Flush()

		case <-keepalive.C:
			ping := sse.Event{UserID: subject, Event: "ping", Data: map[string]int64{"timestamp": time.Now().Unix()}}
			if err := ping.Write(w); err != nil {
				return
			}
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
