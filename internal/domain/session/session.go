// Package session holds the identity a user carries between requests.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the display identity established at login. Token is the
// upstream bearer token and never leaves the server in JSON.
type Session struct {
	Token       string    `json:"-"`
	UserID      string    `json:"user_id,omitempty"`
	Name        string    `json:"name,omitempty"`
	Role        user.Role `json:"role,omitempty"`
	StationCode string    `json:"station_code,omitempty"`
	ExpiresAt   time.Time `json:"expires_at,omitempty"`
}

// Anonymous reports whether only the token is known.
func (s Session) Anonymous() bool {
	return s.UserID == "" && s.Role == ""
}

// Subject keys per-user resources such as event streams.
func (s Session) Subject() string {
	if s.UserID != "" {
		return s.UserID
	}
	return s.Token
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Store keeps sessions keyed by token.
type Store interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
}

type ctxKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session placed by the session middleware.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
