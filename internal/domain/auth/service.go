package auth

import (
	"context"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/session"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context, token string) error
	// Resolve finds the session for a token: the store first, then the
	// token's own claims.
	Resolve(ctx context.Context, token string) session.Session
}
