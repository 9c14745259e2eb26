package sse

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesOnlyTheUser(t *testing.T) {
	hub := NewHub()
	a, cleanupA := hub.Subscribe("u-1")
	defer cleanupA()
	b, cleanupB := hub.Subscribe("u-2")
	defer cleanupB()

	hub.Publish("u-1", Event{UserID: "u-1", Event: "export.started", Data: map[string]int{"total": 3}})

	require.Len(t, a, 1)
	assert.Equal(t, "export.started", (<-a).Event)
	assert.Len(t, b, 0)
}

func TestHub_CleanupIsIdempotent(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("u-1")
	assert.Equal(t, 1, hub.SubscriberCount("u-1"))

	cleanup()
	cleanup()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, hub.TotalSubscribers())
}

func TestHub_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("u-1")
	defer cleanup()

	for i := 0; i < defaultBuffer+5; i++ {
		hub.Publish("u-1", Event{Event: "export.progress", Data: i})
	}

	assert.Len(t, ch, defaultBuffer)
}

func TestHub_ConcurrentPublishAndSubscribe(t *testing.T) {
	hub := NewHub()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, cleanup := hub.Subscribe("u-1")
			cleanup()
		}()
		go func() {
			defer wg.Done()
			hub.Publish("u-1", Event{Event: "export.progress"})
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, hub.TotalSubscribers())
}

func TestEvent_Write(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Event{Event: "export.finished", Data: map[string]string{"filename": "a.pdf"}}.Write(&buf))

	assert.Equal(t, "event: export.finished\ndata: {\"filename\":\"a.pdf\"}\n\n", buf.String())
}
