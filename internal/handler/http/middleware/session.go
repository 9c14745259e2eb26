package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/session"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/apiclient"
)

// SessionResolver finds the session belonging to a bearer token.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) session.Session
}

// Session reads the bearer token from the token cookie, falling back to the
// Authorization header, and puts the token and its session on the request
// context. It never rejects a request.
func Session(cookieName string, resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if c, err := r.Cookie(cookieName); err == nil {
				token = c.Value
			}
			if token == "" {
				token = jwtauth.TokenFromHeader(r)
			}
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := apiclient.WithToken(r.Context(), token)
			ctx = session.WithSession(ctx, resolver.Resolve(ctx, token))
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
