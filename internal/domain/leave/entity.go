package leave

import "time"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// CanTransitionTo encodes PENDING -> APPROVED | REJECTED | CANCELLED.
func (s Status) CanTransitionTo(next Status) bool {
	if s != StatusPending {
		return false
	}
	switch next {
	case StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	AppliedOn  time.Time
	UpdatedAt  time.Time

	// Populated by list queries
	EmployeeName *string
}

// Days is the inclusive length of the requested period.
func (l LeaveRequest) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}
