package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
}

func NewLeaveService(leaveRequestRepository leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepository,
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, principal user.User, req leave.ApplyLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: principal.ID,
		LeaveType:  strings.TrimSpace(req.LeaveType),
		StartDate:  req.Start,
		EndDate:    req.End,
		Reason:     strings.TrimSpace(req.Reason),
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// MyRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) MyRequests(ctx context.Context, principal user.User) ([]leave.LeaveRequest, error) {
	requests, err := s.LeaveRequestRepository.ListByEmployee(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// Cancel implements leave.LeaveService.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, principal user.User, id string) (bool, error) {
	if !validator.IsValidUUID(id) {
		return false, leave.ErrLeaveRequestNotFound
	}
	if err := guardTransition(leave.StatusCancelled); err != nil {
		return false, err
	}

	_, err := s.LeaveRequestRepository.TransitionFromPending(ctx, id, principal.ID, leave.StatusCancelled)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	requests, err := s.LeaveRequestRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return s.decide(ctx, id, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return s.decide(ctx, id, leave.StatusRejected)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, id string, next leave.Status) (leave.LeaveRequest, error) {
	if !validator.IsValidUUID(id) {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if err := guardTransition(next); err != nil {
		return leave.LeaveRequest{}, err
	}

	decided, err := s.LeaveRequestRepository.TransitionFromPending(ctx, id, "", next)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	slog.Info("leave request decided", "leave_request_id", id, "status", next)
	return decided, nil
}

// guardTransition rejects targets a pending request can never move to.
func guardTransition(next leave.Status) error {
	if !leave.StatusPending.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", leave.ErrInvalidTransition, leave.StatusPending, next)
	}
	return nil
}
