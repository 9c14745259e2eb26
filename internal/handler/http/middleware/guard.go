package middleware

import "net/http"

// ForbiddenPath is where unauthenticated visitors of a guarded section land.
const ForbiddenPath = "/forbidden"

// Guard redirects to ForbiddenPath when the token cookie is missing or
// empty. Any non-empty value passes; validity is left to the upstream API.
func Guard(cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(cookieName)
			if err != nil || c.Value == "" {
				http.Redirect(w, r, ForbiddenPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
