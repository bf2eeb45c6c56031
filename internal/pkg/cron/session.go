package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/auth"
)

const revokedSweepInterval = 15 * time.Minute

// RevokedSessionSweep deletes revocations of tokens that have expired, so
// the table only holds sessions that could still be presented.
func RevokedSessionSweep(revokedSessions auth.RevokedSessionRepository) Task {
	return Task{
		Name:     "revoked-session-sweep",
		Interval: revokedSweepInterval,
		Run: func(ctx context.Context) error {
			n, err := revokedSessions.DeleteExpired(ctx)
			if err != nil {
				return fmt.Errorf("delete expired revocations: %w", err)
			}
			if n > 0 {
				slog.Info("pruned revoked sessions", "count", n)
			}
			return nil
		},
	}
}
