package performance

import (
	"strconv"
	"strings"

	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
)

type CreateReviewRequest struct {
	EmployeeID        string
	Rating            string
	Comments          string
	ProductivityScore string
	AttendanceScore   string

	// Set by Validate
	ParsedRating       int     `json:"-"`
	ParsedProductivity float64 `json:"-"`
	ParsedAttendance   float64 `json:"-"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employee", "employee must be a valid UUID")
	}

	rating, err := strconv.Atoi(strings.TrimSpace(r.Rating))
	if err != nil || rating < MinRating || rating > MaxRating {
		errs.Add("rating", "rating must be between 1 and 5")
	}
	r.ParsedRating = rating

	if validator.IsEmpty(r.Comments) {
		errs.Add("comments", "comments is required")
	}

	r.ParsedProductivity = parseScore(&errs, "productivity_score", r.ProductivityScore)
	r.ParsedAttendance = parseScore(&errs, "attendance_score", r.AttendanceScore)

	return errs.Err()
}

// parseScore treats an empty value as 0.
func parseScore(errs *validator.ValidationErrors, field, value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		errs.Add(field, field+" must be a number")
		return 0
	}
	return f
}

type ReviewResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      *string `json:"employee_name,omitempty"`
	ReviewerID        string  `json:"reviewer_id"`
	ReviewerName      *string `json:"reviewer_name,omitempty"`
	ReviewDate        string  `json:"review_date"`
	Rating            int     `json:"rating"`
	Comments          string  `json:"comments"`
	ProductivityScore float64 `json:"productivity_score"`
	AttendanceScore   float64 `json:"attendance_score"`
}

func NewReviewResponses(reviews []Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ReviewResponse{
			ID:                r.ID,
			EmployeeID:        r.EmployeeID,
			EmployeeName:      r.EmployeeName,
			ReviewerID:        r.ReviewerID,
			ReviewerName:      r.ReviewerName,
			ReviewDate:        r.ReviewDate.Format("2006-01-02"),
			Rating:            r.Rating,
			Comments:          r.Comments,
			ProductivityScore: r.ProductivityScore,
			AttendanceScore:   r.AttendanceScore,
		})
	}
	return out
}
