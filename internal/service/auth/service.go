package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/auth"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/session"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	auth.AuthRepository
	store session.Store
	jwt.Service
	ttl time.Duration
	now func() time.Time
}

func NewAuthService(authRepository auth.AuthRepository, store session.Store, jwtService jwt.Service, ttl time.Duration) auth.AuthService {
	return &AuthServiceImpl{
		AuthRepository: authRepository,
		store:          store,
		Service:        jwtService,
		ttl:            ttl,
		now:            time.Now,
	}
}

// loginPayload covers the answer shapes the login endpoint is known to use.
type loginPayload struct {
	Token       string          `json:"token"`
	AccessToken string          `json:"access_token"`
	User        json.RawMessage `json:"user"`
	Data        *struct {
		Token       string          `json:"token"`
		AccessToken string          `json:"access_token"`
		User        json.RawMessage `json:"user"`
	} `json:"data"`
}

func (p loginPayload) token() string {
	switch {
	case p.Token != "":
		return p.Token
	case p.AccessToken != "":
		return p.AccessToken
	case p.Data != nil && p.Data.Token != "":
		return p.Data.Token
	case p.Data != nil:
		return p.Data.AccessToken
	}
	return ""
}

func (p loginPayload) user() json.RawMessage {
	if len(p.User) > 0 && !bytes.Equal(p.User, []byte("null")) {
		return p.User
	}
	if p.Data != nil {
		return p.Data.User
	}
	return nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	raw, err := a.AuthRepository.Login(ctx, req)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	var payload loginPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("%w: %v", auth.ErrLoginRejected, err)
	}
	token := payload.token()
	if token == "" {
		return auth.LoginResponse{}, auth.ErrTokenMissing
	}

	s := session.Session{Token: token, ExpiresAt: a.now().Add(a.ttl)}
	if u := payload.user(); len(u) > 0 {
		var account user.User
		if err := json.Unmarshal(u, &account); err != nil {
			return auth.LoginResponse{}, fmt.Errorf("failed to decode login user: %w", err)
		}
		s.UserID = account.ID.String()
		s.Name = account.Name
		s.Role = account.Role
		s.StationCode = account.StationCode()
	} else {
		s = a.fromClaims(s)
	}

	landing, err := s.Role.LandingRoute()
	if err != nil {
		return auth.LoginResponse{}, err
	}

	if err := a.store.Save(ctx, s); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to save session: %w", err)
	}

	slog.Info("user logged in", "user_id", s.UserID, "role", s.Role, "station", s.StationCode)
	return auth.LoginResponse{Session: s, LandingRoute: landing}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	a.Service.RevokeToken(token)
	if err := a.store.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Resolve implements auth.AuthService.
func (a *AuthServiceImpl) Resolve(ctx context.Context, token string) session.Session {
	if token == "" {
		return session.Session{}
	}
	if a.Service.IsTokenRevoked(token) {
		return session.Session{Token: token}
	}
	s, err := a.store.Get(ctx, token)
	if err == nil {
		return s
	}
	if !errors.Is(err, session.ErrSessionNotFound) {
		slog.Warn("session lookup failed", "error", err)
	}
	return a.fromClaims(session.Session{Token: token})
}

// fromClaims fills s from the token's own claims; opaque tokens leave s
// anonymous.
func (a *AuthServiceImpl) fromClaims(s session.Session) session.Session {
	claims, err := a.Service.Inspect(s.Token)
	if err != nil {
		return s
	}
	s.UserID = claims.UserID
	s.Name = claims.Name
	s.Role = user.Role(claims.Role)
	s.StationCode = claims.StationCode
	if !claims.ExpiresAt.IsZero() && (s.ExpiresAt.IsZero() || claims.ExpiresAt.Before(s.ExpiresAt)) {
		s.ExpiresAt = claims.ExpiresAt
	}
	return s
}
