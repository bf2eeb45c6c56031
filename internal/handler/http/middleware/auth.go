package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

const LoginPath = "/login"

// PrincipalLoader resolves the user a session token points at.
type PrincipalLoader interface {
	Get(ctx context.Context, id string) (user.User, error)
}

// RevocationChecker reports whether a session token was logged out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// AuthRequired must run after jwtauth.Verify. The user is reloaded from the
// store on every request so role changes and deletions apply immediately.
func AuthRequired(jwtService jwt.Service, revocations RevocationChecker, loader PrincipalLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.Redirect(w, LoginPath)
				return
			}

			revoked, err := revocations.IsRevoked(r.Context(), jwtauth.TokenFromCookie(r))
			if err != nil {
				slog.Error("failed to check session revocation", "error", err)
				response.HandleError(w, err)
				return
			}
			if revoked {
				http.SetCookie(w, jwtService.ClearSessionCookie())
				response.Redirect(w, LoginPath)
				return
			}

			tokenType, _ := claims["type"].(string)
			userID, _ := claims["user_id"].(string)
			if tokenType != "session" || userID == "" {
				response.Redirect(w, LoginPath)
				return
			}

			principal, err := loader.Get(r.Context(), userID)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					http.SetCookie(w, jwtService.ClearSessionCookie())
					response.Redirect(w, LoginPath)
					return
				}
				slog.Error("failed to load principal", "user_id", userID, "error", err)
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		}
		return http.HandlerFunc(hfn)
	}
}
