package auth

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

type AuthService interface {
	// Authenticate checks a username and password without side effects.
	Authenticate(ctx context.Context, username, password string) (user.User, error)
	// Login authenticates, issues a session token and writes a "Logged in" entry.
	Login(ctx context.Context, req LoginRequest, tracking SessionTrackingRequest) (Session, error)
	// GoogleRedirect returns the consent URL and the state to remember.
	GoogleRedirect(ctx context.Context, userAgent string) (url string, state string, err error)
	// OAuthCallbackGoogle signs in the existing account owning the verified Google email.
	OAuthCallbackGoogle(ctx context.Context, code string, tracking SessionTrackingRequest) (Session, error)
	// Logout writes a "Logged out" entry and revokes the token.
	Logout(ctx context.Context, principal user.User, token string, tracking SessionTrackingRequest) error
}
