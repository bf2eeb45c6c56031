package shift

import "errors"

var (
	ErrShiftNotFound    = errors.New("shift not found")
	ErrEmployeeNotFound = errors.New("employee not found")
)
