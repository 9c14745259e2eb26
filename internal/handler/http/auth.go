package http

import (
	"log/slog"
	"net/http"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/auth"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/session"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/handler/http/response"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/apiclient"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Session(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest
	if err := decodeBody(r, &loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	res, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Warn("Login failed", "email", loginReq.Email, "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.TokenCookie(res.Session.Token, res.Session.ExpiresAt))
	response.SuccessWithMessage(w, "Login berhasil!", res)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.authService.Logout(r.Context(), apiclient.TokenFromContext(r.Context())); err != nil {
		response.HandleError(w, err)
		return
	}
	http.SetCookie(w, a.jwtService.ClearTokenCookie())
	response.SuccessWithMessage(w, "Logout berhasil", nil)
}

// Session implements AuthHandler.
func (a *AuthHandlerImpl) Session(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Belum login")
		return
	}
	response.Success(w, s)
}

// endSession clears the session after the upstream revoked the token and
// sends the browser back to the login page.
func endSession(w http.ResponseWriter, r *http.Request, jwtService jwt.Service, authService auth.AuthService) {
	if err := authService.Logout(r.Context(), apiclient.TokenFromContext(r.Context())); err != nil {
		slog.Warn("failed to clear revoked session", "error", err)
	}
	http.SetCookie(w, jwtService.ClearTokenCookie())
	http.Redirect(w, r, "/login", http.StatusFound)
}
