package feedback

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
)

type SubmitFeedbackRequest struct {
	Subject string
	Comment string
}

func (r *SubmitFeedbackRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(strings.TrimSpace(r.Subject)) > 200 {
		errs.Add("subject", "subject must not exceed 200 characters")
	}
	if validator.IsEmpty(r.Comment) {
		errs.Add("comment", "comment is required")
	}

	return errs.Err()
}

type FeedbackResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Subject      *string `json:"subject"`
	Comment      string  `json:"comment"`
	CreatedAt    string  `json:"created_at"`
}

func NewFeedbackResponses(items []Feedback) []FeedbackResponse {
	out := make([]FeedbackResponse, 0, len(items))
	for _, f := range items {
		out = append(out, FeedbackResponse{
			ID:           f.ID,
			EmployeeID:   f.EmployeeID,
			EmployeeName: f.EmployeeName,
			Subject:      f.Subject,
			Comment:      f.Comment,
			CreatedAt:    f.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
