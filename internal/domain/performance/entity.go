package performance

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID                string
	EmployeeID        string
	ReviewerID        string
	ReviewDate        time.Time
	Rating            int
	Comments          string
	ProductivityScore float64
	AttendanceScore   float64

	// DTO
	EmployeeName *string
	ReviewerName *string
}
