package feedback

import "time"

// Feedback is append-only and authored by the employee it belongs to.
type Feedback struct {
	ID         string
	EmployeeID string
	Subject    *string
	Comment    string
	CreatedAt  time.Time

	// DTO
	EmployeeName *string
}
