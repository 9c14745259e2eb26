// Package jwt reads identity claims from upstream bearer tokens and builds
// the token cookie. Tokens are never verified here; the upstream API is the
// only party that checks signatures and expiry.
package jwt

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Claims is the identity carried inside an upstream token.
type Claims struct {
	UserID      string
	Name        string
	Email       string
	Role        string
	StationCode string
	ExpiresAt   time.Time
}

type Service interface {
	Inspect(token string) (Claims, error)
	TokenCookie(token string, expiresAt time.Time) *http.Cookie
	ClearTokenCookie() *http.Cookie
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
	// PruneRevoked forgets revocations made before cutoff.
	PruneRevoked(cutoff time.Time) int
}

type JWTService struct {
	cookieName    string
	secure        bool
	httpOnly      bool
	revokedTokens map[string]int64
	mu            sync.RWMutex
}

func NewJWTService(cookieName string, secure, httpOnly bool) Service {
	return &JWTService{
		cookieName:    cookieName,
		secure:        secure,
		httpOnly:      httpOnly,
		revokedTokens: make(map[string]int64),
	}
}

// Inspect parses token without verifying its signature or validating its
// time claims.
func (j *JWTService) Inspect(token string) (Claims, error) {
	parsed, err := jwt.ParseInsecure([]byte(token))
	if err != nil {
		return Claims{}, fmt.Errorf("failed to parse token: %w", err)
	}

	c := Claims{
		UserID:    firstString(parsed, "user_id", "id", "userId"),
		Name:      firstString(parsed, "name", "nama"),
		Email:     firstString(parsed, "email"),
		Role:      firstString(parsed, "role"),
		ExpiresAt: parsed.Expiration(),
	}
	if c.UserID == "" {
		c.UserID = parsed.Subject()
	}
	c.StationCode = firstString(parsed, "code_spbu", "spbu_code")
	if c.StationCode == "" {
		if spbu, ok := parsed.Get("spbu"); ok {
			if m, ok := spbu.(map[string]interface{}); ok {
				c.StationCode = stringOf(m["code_spbu"])
			}
		}
	}
	return c, nil
}

func firstString(t jwt.Token, names ...string) string {
	for _, n := range names {
		if v, ok := t.Get(n); ok {
			if s := stringOf(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// stringOf renders string and numeric claim values; numeric IDs arrive as
// float64.
func stringOf(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return fmt.Sprintf("%.0f", x)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

func (j *JWTService) TokenCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     j.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: j.httpOnly,
		Secure:   j.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearTokenCookie expires the token cookie in the browser.
func (j *JWTService) ClearTokenCookie() *http.Cookie {
	return &http.Cookie{
		Name:     j.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: j.httpOnly,
		Secure:   j.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

func (j *JWTService) PruneRevoked(cutoff time.Time) int {
	j.mu.Lock()
	defer j.mu.Unlock()
	n := 0
	for token, at := range j.revokedTokens {
		if at < cutoff.Unix() {
			delete(j.revokedTokens, token)
			n++
		}
	}
	return n
}
