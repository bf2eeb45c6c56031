package postgresql

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/performance"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
)

type reviewRepositoryImpl struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) performance.ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

var reviewSelect = `
	SELECT r.id, r.employee_id, r.reviewer_id, r.review_date, r.rating, r.comments,
		   r.productivity_score, r.attendance_score, ` + displayName("e") + `, ` + displayName("rv") + `
	FROM performance_reviews r
	INNER JOIN users e ON e.id = r.employee_id
	INNER JOIN users rv ON rv.id = r.reviewer_id
`

// Create implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) Create(ctx context.Context, rev performance.Review) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_reviews (employee_id, reviewer_id, rating, comments, productivity_score, attendance_score)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, reviewer_id, review_date, rating, comments, productivity_score, attendance_score
	`

	var created performance.Review
	err := q.QueryRow(ctx, query,
		rev.EmployeeID,
		rev.ReviewerID,
		rev.Rating,
		rev.Comments,
		rev.ProductivityScore,
		rev.AttendanceScore,
	).Scan(
		&created.ID,
		&created.EmployeeID,
		&created.ReviewerID,
		&created.ReviewDate,
		&created.Rating,
		&created.Comments,
		&created.ProductivityScore,
		&created.AttendanceScore,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return performance.Review{}, performance.ErrEmployeeNotFound
		}
		return performance.Review{}, err
	}
	return created, nil
}

func (r *reviewRepositoryImpl) list(ctx context.Context, where string, args ...any) ([]performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, reviewSelect+where+` ORDER BY r.review_date DESC, r.id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []performance.Review{}
	for rows.Next() {
		var rev performance.Review
		var employeeName, reviewerName string
		err := rows.Scan(
			&rev.ID,
			&rev.EmployeeID,
			&rev.ReviewerID,
			&rev.ReviewDate,
			&rev.Rating,
			&rev.Comments,
			&rev.ProductivityScore,
			&rev.AttendanceScore,
			&employeeName,
			&reviewerName,
		)
		if err != nil {
			return nil, err
		}
		rev.EmployeeName, rev.ReviewerName = &employeeName, &reviewerName
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

// ListByEmployee implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]performance.Review, error) {
	return r.list(ctx, ` WHERE r.employee_id = $1`, employeeID)
}

// List implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) List(ctx context.Context) ([]performance.Review, error) {
	return r.list(ctx, "")
}
