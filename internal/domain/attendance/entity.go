package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Action string

const (
	ActionCheckIn  Action = "check_in"
	ActionCheckOut Action = "check_out"
)

func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionCheckIn, ActionCheckOut:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAction, s)
}

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time

	// DTO
	EmployeeName *string
}

// WorkHours is check-out minus check-in in hours rounded to two places,
// or zero until both are recorded.
func (a Attendance) WorkHours() float64 {
	if a.CheckIn == nil || a.CheckOut == nil {
		return 0
	}
	d := a.CheckOut.Sub(*a.CheckIn)
	if d <= 0 {
		return 0
	}
	hours, _ := decimal.NewFromInt(int64(d)).
		Div(decimal.NewFromInt(int64(time.Hour))).
		Round(2).
		Float64()
	return hours
}

// Apply records action at now. Each timestamp is written once; an action
// that would overwrite one is ignored and Apply returns false. Checking out
// without a check-in is allowed and leaves WorkHours at 0.
func (a *Attendance) Apply(action Action, now time.Time) bool {
	switch action {
	case ActionCheckIn:
		if a.CheckIn != nil {
			return false
		}
		a.CheckIn = &now
		return true
	case ActionCheckOut:
		if a.CheckOut != nil {
			return false
		}
		a.CheckOut = &now
		return true
	}
	return false
}
