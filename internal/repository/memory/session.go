package memory

import (
	"context"
	"sync"
	"time"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/session"
)

// SessionStore keeps sessions in process memory. Expired entries are dropped
// when read.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]session.Session
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]session.Session),
		now:      time.Now,
	}
}

func (s *SessionStore) Save(ctx context.Context, sess session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
	return nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (session.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return session.Session{}, session.ErrSessionNotFound
	}
	if sess.Expired(s.now()) {
		_ = s.Delete(ctx, token)
		return session.Session{}, session.ErrSessionNotFound
	}
	return sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Len returns the number of stored sessions, expired ones included.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops every expired session and returns how many were removed.
func (s *SessionStore) Sweep(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for token, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, token)
			n++
		}
	}
	return n
}
