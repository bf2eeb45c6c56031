package middleware

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

type contextKey string

const principalKey contextKey = "principal"

func WithPrincipal(ctx context.Context, principal user.User) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// PrincipalFromContext returns the user loaded by AuthRequired for this request.
func PrincipalFromContext(ctx context.Context) (user.User, bool) {
	principal, ok := ctx.Value(principalKey).(user.User)
	return principal, ok
}
