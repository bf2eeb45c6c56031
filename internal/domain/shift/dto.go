package shift

import (
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
)

type AssignShiftRequest struct {
	EmployeeID string
	ShiftType  string
	StartTime  string
	EndTime    string
	Day        string

	// Set by Validate
	Type  Type          `json:"-"`
	Start time.Duration `json:"-"`
	End   time.Duration `json:"-"`
	Dow   int           `json:"-"`
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}

	r.Type = TypeDay
	if !validator.IsEmpty(r.ShiftType) {
		t := strings.ToUpper(strings.TrimSpace(r.ShiftType))
		if !validator.IsInSlice(t, TypeValues) {
			errs.Add("shift_type", "shift_type must be one of DAY, NIGHT, OVERTIME")
		}
		r.Type = Type(t)
	}

	var ok bool
	if r.Start, ok = validator.IsValidClock(r.StartTime); !ok {
		errs.Add("start_time", "start_time must be in HH:MM format")
	}
	if r.End, ok = validator.IsValidClock(r.EndTime); !ok {
		errs.Add("end_time", "end_time must be in HH:MM format")
	}

	day, err := strconv.Atoi(strings.TrimSpace(r.Day))
	if err != nil || day < 0 || day > 6 {
		errs.Add("day", "day must be between 0 (Monday) and 6 (Sunday)")
	}
	r.Dow = day

	return errs.Err()
}

type ShiftResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	ShiftType    string  `json:"shift_type"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	DayOfWeek    int     `json:"day_of_week"`
	Day          string  `json:"day"`
	Hours        float64 `json:"hours"`
}

func NewShiftResponses(shifts []Shift) []ShiftResponse {
	out := make([]ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		var day string
		if s.DayOfWeek >= 0 && s.DayOfWeek < len(Weekdays) {
			day = Weekdays[s.DayOfWeek]
		}
		out = append(out, ShiftResponse{
			ID:           s.ID,
			EmployeeID:   s.EmployeeID,
			EmployeeName: s.EmployeeName,
			ShiftType:    string(s.Type),
			StartTime:    FormatClock(s.StartTime),
			EndTime:      FormatClock(s.EndTime),
			DayOfWeek:    s.DayOfWeek,
			Day:          day,
			Hours:        s.Hours(),
		})
	}
	return out
}
