package attendance

import "time"

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
	WorkHours    float64 `json:"work_hours"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format("2006-01-02"),
		CheckIn:      formatTime(a.CheckIn),
		CheckOut:     formatTime(a.CheckOut),
		WorkHours:    a.WorkHours(),
	}
}

func NewAttendanceResponses(records []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, NewAttendanceResponse(a))
	}
	return out
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// MyAttendanceResponse backs the employee attendance page
type MyAttendanceResponse struct {
	Today   AttendanceResponse   `json:"today"`
	History []AttendanceResponse `json:"history"`
}
