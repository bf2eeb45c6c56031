package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeDay      Type = "DAY"      // Day shift
	TypeNight    Type = "NIGHT"    // Night shift
	TypeOvertime Type = "OVERTIME" // Overtime
)

var TypeValues = []string{
	string(TypeDay),
	string(TypeNight),
	string(TypeOvertime),
}

// Weekday names indexed by DayOfWeek, Monday first.
var Weekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

type Shift struct {
	ID         string
	EmployeeID string
	Type       Type
	StartTime  time.Duration // offset from midnight
	EndTime    time.Duration // offset from midnight
	DayOfWeek  int           // 0=Monday, ..., 6=Sunday

	// DTO
	EmployeeName *string
}

// Duration handles shifts that cross midnight: an end at or before the
// start is taken to be on the next day.
func (s Shift) Duration() time.Duration {
	end := s.EndTime
	if end <= s.StartTime {
		end += 24 * time.Hour
	}
	return end - s.StartTime
}

// Hours is Duration in hours rounded to one decimal place.
func (s Shift) Hours() float64 {
	h, _ := decimal.NewFromInt(int64(s.Duration())).
		Div(decimal.NewFromInt(int64(time.Hour))).
		Round(1).
		Float64()
	return h
}

// FormatClock renders an offset from midnight as "15:04".
func FormatClock(d time.Duration) string {
	return time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).Add(d).Format("15:04")
}
