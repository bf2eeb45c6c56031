package postgresql

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/feedback"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
)

type feedbackRepositoryImpl struct {
	db *database.DB
}

func NewFeedbackRepository(db *database.DB) feedback.FeedbackRepository {
	return &feedbackRepositoryImpl{db: db}
}

// Create implements feedback.FeedbackRepository.
func (r *feedbackRepositoryImpl) Create(ctx context.Context, f feedback.Feedback) (feedback.Feedback, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO feedback (employee_id, subject, comment)
		VALUES ($1, $2, $3)
		RETURNING id, employee_id, subject, comment, created_at
	`

	var created feedback.Feedback
	err := q.QueryRow(ctx, query, f.EmployeeID, f.Subject, f.Comment).Scan(
		&created.ID,
		&created.EmployeeID,
		&created.Subject,
		&created.Comment,
		&created.CreatedAt,
	)
	if err != nil {
		return feedback.Feedback{}, err
	}
	return created, nil
}

func (r *feedbackRepositoryImpl) list(ctx context.Context, where string, args ...any) ([]feedback.Feedback, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT f.id, f.employee_id, f.subject, f.comment, f.created_at, ` + displayName("u") + `
		FROM feedback f
		INNER JOIN users u ON u.id = f.employee_id
	` + where + ` ORDER BY f.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []feedback.Feedback{}
	for rows.Next() {
		var f feedback.Feedback
		var name string
		if err := rows.Scan(&f.ID, &f.EmployeeID, &f.Subject, &f.Comment, &f.CreatedAt, &name); err != nil {
			return nil, err
		}
		f.EmployeeName = &name
		items = append(items, f)
	}
	return items, rows.Err()
}

// List implements feedback.FeedbackRepository.
func (r *feedbackRepositoryImpl) List(ctx context.Context) ([]feedback.Feedback, error) {
	return r.list(ctx, "")
}

// ListByEmployee implements feedback.FeedbackRepository.
func (r *feedbackRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]feedback.Feedback, error) {
	return r.list(ctx, `WHERE f.employee_id = $1`, employeeID)
}
