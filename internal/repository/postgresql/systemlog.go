package postgresql

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/systemlog"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
)

type systemLogRepositoryImpl struct {
	db *database.DB
}

func NewSystemLogRepository(db *database.DB) systemlog.SystemLogRepository {
	return &systemLogRepositoryImpl{db: db}
}

// Append implements systemlog.SystemLogRepository.
func (r *systemLogRepositoryImpl) Append(ctx context.Context, e systemlog.Entry) (systemlog.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO system_logs (user_id, action, ip_address)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, action, timestamp, ip_address
	`

	var created systemlog.Entry
	err := q.QueryRow(ctx, query, e.UserID, e.Action, e.IPAddress).Scan(
		&created.ID,
		&created.UserID,
		&created.Action,
		&created.Timestamp,
		&created.IPAddress,
	)
	if err != nil {
		return systemlog.Entry{}, err
	}
	return created, nil
}

// Recent implements systemlog.SystemLogRepository.
func (r *systemLogRepositoryImpl) Recent(ctx context.Context, limit int) ([]systemlog.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.user_id, l.action, l.timestamp, l.ip_address, u.username
		FROM system_logs l
		INNER JOIN users u ON u.id = l.user_id
		ORDER BY l.timestamp DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []systemlog.Entry{}
	for rows.Next() {
		var e systemlog.Entry
		var username string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.Timestamp, &e.IPAddress, &username); err != nil {
			return nil, err
		}
		e.Username = &username
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
