package attendance

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

type AttendanceService interface {
	Record(ctx context.Context, principal user.User, action Action) (Attendance, bool, error)
	Mine(ctx context.Context, principal user.User) (Attendance, []Attendance, error)
	// Monitor lists today's attendance for every employee.
	Monitor(ctx context.Context) ([]MonitorEntry, error)
}

// MonitorEntry pairs an employee with today's record, which may be empty.
type MonitorEntry struct {
	Employee   user.User
	Attendance *Attendance
}
