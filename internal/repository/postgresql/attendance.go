package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

var attendanceSelect = `
	SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out, ` + displayName("u") + `
	FROM attendance a
	INNER JOIN users u ON u.id = a.employee_id
`

func scanAttendance(row rowScanner) (attendance.Attendance, error) {
	var att attendance.Attendance
	var name string
	err := row.Scan(&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut, &name)
	if err != nil {
		return attendance.Attendance{}, err
	}
	att.EmployeeName = &name
	return att, nil
}

func (a *attendanceRepository) list(ctx context.Context, where string, args ...any) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, attendanceSelect+where+` ORDER BY a.date DESC, u.username`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, att)
	}
	return records, rows.Err()
}

// GetOrCreate implements attendance.AttendanceRepository. The insert is a
// no-op when the (employee_id, date) row already exists, so concurrent
// callers converge on the same row.
func (a *attendanceRepository) GetOrCreate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	_, err := q.Exec(ctx, `
		INSERT INTO attendance (employee_id, date)
		VALUES ($1, $2)
		ON CONFLICT (employee_id, date) DO NOTHING
	`, employeeID, date)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	att, err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.employee_id = $1 AND a.date = $2`, employeeID, date))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to load attendance: %w", err)
	}
	return att, nil
}

// SetCheckIn implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetCheckIn(ctx context.Context, id string, at time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `UPDATE attendance SET check_in = $1 WHERE id = $2 AND check_in IS NULL`, at, id)
	if err != nil {
		return false, fmt.Errorf("failed to check in: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetCheckOut(ctx context.Context, id string, at time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `
		UPDATE attendance SET check_out = $1
		WHERE id = $2 AND check_out IS NULL
	`, at, id)
	if err != nil {
		return false, fmt.Errorf("failed to check out: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	att, err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}
	return att, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	return a.list(ctx, ` WHERE a.employee_id = $1`, employeeID)
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context) ([]attendance.Attendance, error) {
	return a.list(ctx, "")
}

// ListForDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListForDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return a.list(ctx, ` WHERE a.date = $1`, date)
}
