package leave

import (
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	LeaveType string
	StartDate string
	EndDate   string
	Reason    string

	// Set by Validate
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs.Add("leave_type", "leave_type is required")
	} else if len(r.LeaveType) > 50 {
		errs.Add("leave_type", "leave_type must not exceed 50 characters")
	}

	if validator.IsEmpty(r.Reason) {
		errs.Add("reason", "reason is required")
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}
	if startOK && endOK && end.Before(start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}

	r.Start, r.End = start, end
	return errs.Err()
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	AppliedOn    string  `json:"applied_on"`
	CanCancel    bool    `json:"can_cancel"`
}

func NewLeaveRequestResponses(requests []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(requests))
	for _, l := range requests {
		out = append(out, LeaveRequestResponse{
			ID:           l.ID,
			EmployeeID:   l.EmployeeID,
			EmployeeName: l.EmployeeName,
			LeaveType:    l.LeaveType,
			StartDate:    l.StartDate.Format("2006-01-02"),
			EndDate:      l.EndDate.Format("2006-01-02"),
			Days:         l.Days(),
			Reason:       l.Reason,
			Status:       string(l.Status),
			AppliedOn:    l.AppliedOn.Format(time.RFC3339),
			CanCancel:    l.Status == StatusPending,
		})
	}
	return out
}
