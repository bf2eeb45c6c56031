package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	earlier := time.Date(2025, 5, 5, 9, 0, 0, 0, time.UTC)
	now := time.Date(2025, 5, 5, 17, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		day         Attendance
		action      Action
		wantApplied bool
		wantIn      *time.Time
		wantOut     *time.Time
	}{
		{"check in on empty day", Attendance{}, ActionCheckIn, true, &now, nil},
		{"second check in ignored", Attendance{CheckIn: &earlier}, ActionCheckIn, false, &earlier, nil},
		{"check out after check in", Attendance{CheckIn: &earlier}, ActionCheckOut, true, &earlier, &now},
		{"check out without check in", Attendance{}, ActionCheckOut, true, nil, &now},
		{"second check out ignored", Attendance{CheckOut: &earlier}, ActionCheckOut, false, nil, &earlier},
		{"unknown action", Attendance{}, Action("lunch"), false, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := tt.day
			assert.Equal(t, tt.wantApplied, day.Apply(tt.action, now))
			assert.Equal(t, tt.wantIn, day.CheckIn)
			assert.Equal(t, tt.wantOut, day.CheckOut)
		})
	}
}

func TestWorkHours(t *testing.T) {
	in := time.Date(2025, 5, 5, 9, 0, 0, 0, time.UTC)
	out := time.Date(2025, 5, 5, 17, 30, 0, 0, time.UTC)

	assert.Equal(t, 8.5, Attendance{CheckIn: &in, CheckOut: &out}.WorkHours())
	assert.Equal(t, 0.0, Attendance{CheckOut: &out}.WorkHours())
	assert.Equal(t, 0.0, Attendance{CheckIn: &in}.WorkHours())
}
