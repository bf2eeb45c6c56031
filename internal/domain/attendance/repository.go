package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// GetOrCreate returns the row for (employeeID, date), inserting an empty
	// one first if none exists.
	GetOrCreate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	// SetCheckIn writes check_in only while it is NULL.
	SetCheckIn(ctx context.Context, id string, at time.Time) (bool, error)
	// SetCheckOut writes check_out only while it is NULL.
	SetCheckOut(ctx context.Context, id string, at time.Time) (bool, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	List(ctx context.Context) ([]Attendance, error)
	ListForDate(ctx context.Context, date time.Time) ([]Attendance, error)
}
