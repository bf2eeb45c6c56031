package auth

import (
	"context"
	"time"
)

// RevokedSessionRepository remembers logged-out session tokens until they
// would have expired on their own.
type RevokedSessionRepository interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
	// DeleteExpired forgets revocations for tokens past their expiry.
	DeleteExpired(ctx context.Context) (int64, error)
}
