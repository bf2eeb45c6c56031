package postgresql

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
)

type revokedSessionRepositoryImpl struct {
	db *database.DB
}

func NewRevokedSessionRepository(db *database.DB) auth.RevokedSessionRepository {
	return &revokedSessionRepositoryImpl{db: db}
}

// hashToken keeps raw session tokens out of the table.
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return base64.StdEncoding.EncodeToString(hash[:])
}

// Revoke implements auth.RevokedSessionRepository.
func (r *revokedSessionRepositoryImpl) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO revoked_sessions (token_hash, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (token_hash) DO NOTHING
	`
	_, err := q.Exec(ctx, query, hashToken(token), expiresAt.UTC())
	return err
}

// IsRevoked implements auth.RevokedSessionRepository.
func (r *revokedSessionRepositoryImpl) IsRevoked(ctx context.Context, token string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var revoked bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM revoked_sessions WHERE token_hash = $1)`,
		hashToken(token),
	).Scan(&revoked)
	return revoked, err
}

// DeleteExpired implements auth.RevokedSessionRepository.
func (r *revokedSessionRepositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM revoked_sessions WHERE expires_at < NOW()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
