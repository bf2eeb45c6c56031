package postgresql

import (
	"context"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgtype"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

func clockToPg(d time.Duration) pgtype.Time {
	return pgtype.Time{Microseconds: d.Microseconds(), Valid: true}
}

func clockFromPg(t pgtype.Time) time.Duration {
	return time.Duration(t.Microseconds) * time.Microsecond
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (employee_id, shift_type, start_time, end_time, day_of_week)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, shift_type, start_time, end_time, day_of_week
	`

	var created shift.Shift
	var start, end pgtype.Time
	err := q.QueryRow(ctx, query, s.EmployeeID, s.Type, clockToPg(s.StartTime), clockToPg(s.EndTime), s.DayOfWeek).Scan(
		&created.ID,
		&created.EmployeeID,
		&created.Type,
		&start,
		&end,
		&created.DayOfWeek,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return shift.Shift{}, shift.ErrEmployeeNotFound
		}
		return shift.Shift{}, err
	}
	created.StartTime, created.EndTime = clockFromPg(start), clockFromPg(end)
	return created, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.employee_id, s.shift_type, s.start_time, s.end_time, s.day_of_week, ` + displayName("u") + `
		FROM shifts s
		INNER JOIN users u ON u.id = s.employee_id
		ORDER BY s.day_of_week, s.start_time, u.username
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := []shift.Shift{}
	for rows.Next() {
		var s shift.Shift
		var start, end pgtype.Time
		var name string
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.Type, &start, &end, &s.DayOfWeek, &name); err != nil {
			return nil, err
		}
		s.StartTime, s.EndTime = clockFromPg(start), clockFromPg(end)
		s.EmployeeName = &name
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}
