package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

const (
	oauthStateCookie  = "oauth_state"
	googleCallbackURL = "/login/oauth/callback/google"
)

type AuthHandler interface {
	LoginPage(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService    jwt.Service
	authService   auth.AuthService
	googleEnabled bool
}

type loginView struct {
	GoogleEnabled bool `json:"google_enabled"`
}

// LoginPage implements AuthHandler.
func (a *AuthHandlerImpl) LoginPage(w http.ResponseWriter, r *http.Request) {
	response.View(w, r, loginView{GoogleEnabled: a.googleEnabled})
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		slog.Error("Login parse error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	loginReq := auth.LoginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	session, err := a.authService.Login(r.Context(), loginReq, trackingFrom(r))
	if err != nil {
		slog.Warn("Login failed", "username", loginReq.Username, "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.SessionCookie(session.Token, session.ExpiresAt))
	response.Redirect(w, "/")
}

// LoginWithGoogle implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	url, state, err := a.authService.GoogleRedirect(r.Context(), r.UserAgent())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     googleCallbackURL,
		Expires:  time.Now().Add(5 * time.Minute),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	fail := func(message string) {
		response.RedirectWithFlash(w, middleware.LoginPath, response.FlashError, message)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    "",
		Path:     googleCallbackURL,
		MaxAge:   -1,
		HttpOnly: true,
	})

	if errorValue := r.URL.Query().Get("error"); errorValue != "" {
		slog.Warn("Google sign-in refused", "error", errorValue)
		fail("Google sign-in was cancelled")
		return
	}

	stateCookie, err := r.Cookie(oauthStateCookie)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		slog.Warn("Google sign-in state mismatch", "error", auth.ErrInvalidOAuthState)
		fail(auth.ErrInvalidOAuthState.Error())
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		fail("Google did not return an authorization code")
		return
	}

	session, err := a.authService.OAuthCallbackGoogle(r.Context(), code, trackingFrom(r))
	if err != nil {
		slog.Warn("Google sign-in failed", "error", err)
		switch {
		case errors.Is(err, auth.ErrAccountNotLinked), errors.Is(err, auth.ErrEmailNotVerified), errors.Is(err, auth.ErrOAuthDisabled):
			fail(err.Error())
		default:
			fail("Google sign-in failed")
		}
		return
	}

	http.SetCookie(w, a.jwtService.SessionCookie(session.Token, session.ExpiresAt))
	response.Redirect(w, "/")
}

// Logout implements AuthHandler. The cookie is cleared even when writing the
// log entry fails.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	principal := principalFrom(r)
	token := jwtauth.TokenFromCookie(r)

	if err := a.authService.Logout(r.Context(), principal, token, trackingFrom(r)); err != nil {
		slog.Error("Logout service error", "user_id", principal.ID, "error", err)
	}

	http.SetCookie(w, a.jwtService.ClearSessionCookie())
	response.Redirect(w, middleware.LoginPath)
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService, googleEnabled bool) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:    jwtService,
		authService:   authService,
		googleEnabled: googleEnabled,
	}
}
