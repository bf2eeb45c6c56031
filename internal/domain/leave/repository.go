package leave

import "context"

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	List(ctx context.Context) ([]LeaveRequest, error)
	// TransitionFromPending moves a PENDING request to next. It returns
	// ErrLeaveRequestAlreadyProcessed if the row is no longer PENDING.
	// An empty employeeID matches any owner.
	TransitionFromPending(ctx context.Context, id, employeeID string, next Status) (LeaveRequest, error)
}
