package leave

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

type LeaveService interface {
	Apply(ctx context.Context, principal user.User, req ApplyLeaveRequest) (LeaveRequest, error)
	MyRequests(ctx context.Context, principal user.User) ([]LeaveRequest, error)
	// Cancel withdraws the principal's own PENDING request. Cancelling a
	// request in any other state changes nothing and returns (false, nil).
	Cancel(ctx context.Context, principal user.User, id string) (bool, error)
	List(ctx context.Context) ([]LeaveRequest, error)
	Approve(ctx context.Context, id string) (LeaveRequest, error)
	Reject(ctx context.Context, id string) (LeaveRequest, error)
}
