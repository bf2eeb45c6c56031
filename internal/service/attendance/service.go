package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository
	now func() time.Time
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, userRepository user.UserRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		UserRepository:       userRepository,
		now:                  time.Now,
	}
}

// today is the server's calendar day stored as a DATE.
func (s *AttendanceServiceImpl) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Record implements attendance.AttendanceService. The boolean reports whether
// the action changed the day's row.
func (s *AttendanceServiceImpl) Record(ctx context.Context, principal user.User, action attendance.Action) (attendance.Attendance, bool, error) {
	if _, err := attendance.ParseAction(string(action)); err != nil {
		return attendance.Attendance{}, false, err
	}

	day, err := s.AttendanceRepository.GetOrCreate(ctx, principal.ID, s.today())
	if err != nil {
		return attendance.Attendance{}, false, fmt.Errorf("failed to get attendance: %w", err)
	}

	at := s.now()
	if !day.Apply(action, at) {
		return day, false, nil
	}

	var applied bool
	switch action {
	case attendance.ActionCheckIn:
		applied, err = s.AttendanceRepository.SetCheckIn(ctx, day.ID, at)
	case attendance.ActionCheckOut:
		applied, err = s.AttendanceRepository.SetCheckOut(ctx, day.ID, at)
	}
	if err != nil {
		return attendance.Attendance{}, false, fmt.Errorf("failed to record %s: %w", action, err)
	}

	// Another request may have won the conditional update; report what is stored.
	current, err := s.AttendanceRepository.GetByID(ctx, day.ID)
	if err != nil {
		return attendance.Attendance{}, false, err
	}
	return current, applied, nil
}

// Mine implements attendance.AttendanceService. Today's row is not created by
// viewing; an empty record for today is returned until the first check-in.
func (s *AttendanceServiceImpl) Mine(ctx context.Context, principal user.User) (attendance.Attendance, []attendance.Attendance, error) {
	history, err := s.AttendanceRepository.ListByEmployee(ctx, principal.ID)
	if err != nil {
		return attendance.Attendance{}, nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	today := s.today()
	current := attendance.Attendance{EmployeeID: principal.ID, Date: today}
	for _, a := range history {
		if sameDay(a.Date, today) {
			current = a
			break
		}
	}
	return current, history, nil
}

// Monitor implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Monitor(ctx context.Context) ([]attendance.MonitorEntry, error) {
	employees, err := s.UserRepository.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := s.AttendanceRepository.ListForDate(ctx, s.today())
	if err != nil {
		return nil, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	byEmployee := make(map[string]attendance.Attendance, len(records))
	for _, r := range records {
		byEmployee[r.EmployeeID] = r
	}

	entries := make([]attendance.MonitorEntry, 0, len(employees))
	for _, emp := range employees {
		entry := attendance.MonitorEntry{Employee: emp}
		if r, ok := byEmployee[emp.ID]; ok {
			entry.Attendance = &r
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
