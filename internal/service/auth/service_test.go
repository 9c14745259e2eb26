package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/auth"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/session"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/apiclient"
	jwtpkg "github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/jwt"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthRepo struct {
	body string
	err  error
	got  auth.LoginRequest
}

func (f *fakeAuthRepo) Login(ctx context.Context, req auth.LoginRequest) (json.RawMessage, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return json.RawMessage(f.body), nil
}

var loginTime = time.Now().Truncate(time.Second)

func newService(repo auth.AuthRepository) (*AuthServiceImpl, *memory.SessionStore) {
	store := memory.NewSessionStore()
	svc := NewAuthService(repo, store, jwtpkg.NewJWTService("token", true, true), 24*time.Hour).(*AuthServiceImpl)
	svc.now = func() time.Time { return loginTime }
	return svc, store
}

func signedToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	tok := jwt.New()
	for k, v := range claims {
		require.NoError(t, tok.Set(k, v))
	}
	b, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, []byte("k")))
	require.NoError(t, err)
	return string(b)
}

var validLogin = auth.LoginRequest{Email: "spv@spbu.id", Password: "rahasia"}

func TestLogin_ResponseShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"top-level token", `{"token":"tok-1","user":{"id":5,"name":"Sri","role":"SUPERVISOR","spbu":{"code_spbu":"34.17115"}}}`},
		{"access_token", `{"access_token":"tok-1","user":{"id":5,"name":"Sri","role":"SUPERVISOR","spbu":{"code_spbu":"34.17115"}}}`},
		{"data envelope", `{"data":{"token":"tok-1","user":{"id":5,"name":"Sri","role":"SUPERVISOR","spbu":{"code_spbu":"34.17115"}}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newService(&fakeAuthRepo{body: tt.body})

			res, err := svc.Login(context.Background(), validLogin)

			require.NoError(t, err)
			assert.Equal(t, "/supervisor/dashboard", res.LandingRoute)
			assert.Equal(t, "5", res.Session.UserID)
			assert.Equal(t, user.RoleSupervisor, res.Session.Role)
			assert.Equal(t, "34.17115", res.Session.StationCode)
			assert.Equal(t, loginTime.Add(24*time.Hour), res.Session.ExpiresAt)

			stored, err := store.Get(context.Background(), "tok-1")
			require.NoError(t, err)
			assert.Equal(t, "Sri", stored.Name)
		})
	}
}

func TestLogin_TokenMissing(t *testing.T) {
	svc, store := newService(&fakeAuthRepo{body: `{"user":{"id":1,"role":"OB"}}`})

	_, err := svc.Login(context.Background(), validLogin)

	assert.ErrorIs(t, err, auth.ErrTokenMissing)
	assert.Equal(t, 0, store.Len())
}

func TestLogin_UnknownRole(t *testing.T) {
	svc, _ := newService(&fakeAuthRepo{body: `{"token":"t","user":{"id":1,"role":"KASIR"}}`})

	_, err := svc.Login(context.Background(), validLogin)

	assert.ErrorIs(t, err, user.ErrUnknownRole)
}

func TestLogin_UserFromClaims(t *testing.T) {
	token := signedToken(t, map[string]interface{}{"id": 9, "role": "OPERATOR", "code_spbu": "31.1"})
	svc, _ := newService(&fakeAuthRepo{body: `{"token":"` + token + `"}`})

	res, err := svc.Login(context.Background(), validLogin)

	require.NoError(t, err)
	assert.Equal(t, "/operator/dashboard", res.LandingRoute)
	assert.Equal(t, "9", res.Session.UserID)
	assert.Equal(t, "31.1", res.Session.StationCode)
}

func TestLogin_UpstreamRejection(t *testing.T) {
	rejection := &apiclient.Error{StatusCode: http.StatusUnauthorized, Message: "Email atau password salah"}
	svc, _ := newService(&fakeAuthRepo{err: rejection})

	_, err := svc.Login(context.Background(), validLogin)

	var apiErr *apiclient.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Email atau password salah", apiErr.Message)
}

func TestLogin_ValidatesBeforeForwarding(t *testing.T) {
	repo := &fakeAuthRepo{body: `{"token":"t"}`}
	svc, _ := newService(repo)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "bukan-email"})

	assert.Error(t, err)
	assert.Empty(t, repo.got.Email)
}

func TestLogout_ClearsSession(t *testing.T) {
	svc, store := newService(&fakeAuthRepo{body: `{"token":"tok-1","user":{"id":1,"role":"OB"}}`})
	_, err := svc.Login(context.Background(), validLogin)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), "tok-1"))

	_, err = store.Get(context.Background(), "tok-1")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.True(t, svc.Resolve(context.Background(), "tok-1").Anonymous())
}

func TestResolve(t *testing.T) {
	svc, store := newService(&fakeAuthRepo{})
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, session.Session{Token: "stored", UserID: "u-1", Role: user.RoleOB}))

	t.Run("store", func(t *testing.T) {
		assert.Equal(t, "u-1", svc.Resolve(ctx, "stored").UserID)
	})
	t.Run("claims", func(t *testing.T) {
		token := signedToken(t, map[string]interface{}{"sub": "u-2", "role": "SATPAM"})
		s := svc.Resolve(ctx, token)
		assert.Equal(t, "u-2", s.UserID)
		assert.Equal(t, user.RoleSatpam, s.Role)
	})
	t.Run("opaque", func(t *testing.T) {
		s := svc.Resolve(ctx, "opaque-token")
		assert.True(t, s.Anonymous())
		assert.Equal(t, "opaque-token", s.Token)
	})
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, session.Session{}, svc.Resolve(ctx, ""))
	})
}
