package jwt

import (
	"net/http"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	tok := jwt.New()
	for k, v := range claims {
		require.NoError(t, tok.Set(k, v))
	}
	b, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, []byte("upstream-secret")))
	require.NoError(t, err)
	return string(b)
}

func TestInspect_ReadsClaimsWithoutVerifying(t *testing.T) {
	exp := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	token := signed(t, map[string]interface{}{
		"id":   12,
		"name": "Budi",
		"role": "SUPERVISOR",
		"spbu": map[string]interface{}{"code_spbu": "34.17115"},
		"exp":  exp.Unix(),
	})
	svc := NewJWTService("token", true, false)

	c, err := svc.Inspect(token)

	require.NoError(t, err)
	assert.Equal(t, "12", c.UserID)
	assert.Equal(t, "Budi", c.Name)
	assert.Equal(t, "SUPERVISOR", c.Role)
	assert.Equal(t, "34.17115", c.StationCode)
	assert.True(t, c.ExpiresAt.Equal(exp))
}

func TestInspect_SubjectFallback(t *testing.T) {
	svc := NewJWTService("token", true, false)

	c, err := svc.Inspect(signed(t, map[string]interface{}{"sub": "u-7"}))

	require.NoError(t, err)
	assert.Equal(t, "u-7", c.UserID)
}

func TestInspect_Opaque(t *testing.T) {
	_, err := NewJWTService("token", true, false).Inspect("not-a-jwt")
	assert.Error(t, err)
}

func TestTokenCookie(t *testing.T) {
	svc := NewJWTService("token", true, true)
	exp := time.Now().Add(24 * time.Hour)

	c := svc.TokenCookie("abc", exp)
	assert.Equal(t, "token", c.Name)
	assert.Equal(t, "abc", c.Value)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)

	cleared := svc.ClearTokenCookie()
	assert.Equal(t, -1, cleared.MaxAge)
	assert.Empty(t, cleared.Value)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("token", true, false)
	assert.False(t, svc.IsTokenRevoked("abc"))
	svc.RevokeToken("abc")
	assert.True(t, svc.IsTokenRevoked("abc"))
}

func TestPruneRevoked(t *testing.T) {
	svc := NewJWTService("token", true, false)
	svc.RevokeToken("abc")

	assert.Equal(t, 0, svc.PruneRevoked(time.Now().Add(-time.Hour)))
	assert.True(t, svc.IsTokenRevoked("abc"))

	assert.Equal(t, 1, svc.PruneRevoked(time.Now().Add(time.Hour)))
	assert.False(t, svc.IsTokenRevoked("abc"))
}
