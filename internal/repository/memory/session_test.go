package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	require.NoError(t, store.Save(ctx, session.Session{Token: "tok", Name: "Budi"}))
	got, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "Budi", got.Name)

	require.NoError(t, store.Delete(ctx, "tok"))
	_, err = store.Get(ctx, "tok")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestSessionStore_ExpiredIsDropped(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, session.Session{Token: "old", ExpiresAt: now.Add(-time.Second)}))

	_, err := store.Get(ctx, "old")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			tok := string(rune('a' + n%26))
			_ = store.Save(ctx, session.Session{Token: tok})
			_, _ = store.Get(ctx, tok)
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, store.Len(), 26)
}

func TestSessionStore_Sweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, session.Session{Token: "old", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, store.Save(ctx, session.Session{Token: "live", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, store.Save(ctx, session.Session{Token: "forever"}))

	assert.Equal(t, 1, store.Sweep(ctx))
	assert.Equal(t, 2, store.Len())
}
