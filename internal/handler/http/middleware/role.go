package middleware

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
)

// Require lets the request through only when allowed holds for the principal.
// A denied request is sent back to the dashboard without a message.
func Require(allowed user.Predicate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				response.Redirect(w, LoginPath)
				return
			}

			if !allowed(principal) {
				slog.Info("access denied", "user_id", principal.ID, "role", principal.Role, "path", r.URL.Path)
				response.Redirect(w, "/")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
