package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance not found")
	ErrInvalidAction      = errors.New("invalid attendance action")
)
