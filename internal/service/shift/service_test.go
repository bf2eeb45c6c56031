package shift

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const employeeID = "40000000-0000-0000-0000-000000000001"

type memShiftRepo struct {
	shifts []shift.Shift
}

func (r *memShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	s.ID = "shift-1"
	r.shifts = append(r.shifts, s)
	return s, nil
}

func (r *memShiftRepo) List(ctx context.Context) ([]shift.Shift, error) {
	return r.shifts, nil
}

type fakeUserRepo struct {
	user.UserRepository
}

func (fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	if id != employeeID {
		return user.User{}, user.ErrUserNotFound
	}
	return user.User{ID: id}, nil
}

func (fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	return []user.User{{ID: employeeID}}, nil
}

func TestAssign_NightShift(t *testing.T) {
	repo := &memShiftRepo{}
	svc := NewShiftService(repo, fakeUserRepo{})

	created, err := svc.Assign(context.Background(), shift.AssignShiftRequest{
		EmployeeID: employeeID,
		ShiftType:  "night",
		StartTime:  "22:00",
		EndTime:    "06:00",
		Day:        "4",
	})
	require.NoError(t, err)
	assert.Equal(t, shift.TypeNight, created.Type)
	assert.Equal(t, 22*time.Hour, created.StartTime)
	assert.Equal(t, 4, created.DayOfWeek)
	assert.Equal(t, 8.0, created.Hours())

	shifts, users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, shifts, 1)
	assert.Len(t, users, 1)
}

func TestAssign_Errors(t *testing.T) {
	svc := NewShiftService(&memShiftRepo{}, fakeUserRepo{})

	_, err := svc.Assign(context.Background(), shift.AssignShiftRequest{
		EmployeeID: "50000000-0000-0000-0000-000000000009",
		StartTime:  "09:00",
		EndTime:    "17:00",
		Day:        "0",
	})
	assert.ErrorIs(t, err, shift.ErrEmployeeNotFound)

	_, err = svc.Assign(context.Background(), shift.AssignShiftRequest{
		EmployeeID: employeeID,
		StartTime:  "9am",
		EndTime:    "17:00",
		Day:        "7",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "start_time")
	assert.Contains(t, verrs.ToMap(), "day")
}
