package leave

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	aliceID   = "aaaaaaaa-0000-0000-0000-000000000001"
	bobID     = "bbbbbbbb-0000-0000-0000-000000000002"
	requestID = "cccccccc-0000-0000-0000-000000000003"
	missingID = "dddddddd-0000-0000-0000-000000000004"
)

type memLeaveRepo struct {
	requests map[string]leave.LeaveRequest
}

func (r *memLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	req.ID = requestID
	req.AppliedOn = time.Now()
	r.requests[req.ID] = req
	return req, nil
}

func (r *memLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (r *memLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	out := []leave.LeaveRequest{}
	for _, req := range r.requests {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *memLeaveRepo) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	out := []leave.LeaveRequest{}
	for _, req := range r.requests {
		out = append(out, req)
	}
	return out, nil
}

func (r *memLeaveRepo) TransitionFromPending(ctx context.Context, id, employeeID string, next leave.Status) (leave.LeaveRequest, error) {
	req, ok := r.requests[id]
	if !ok || (employeeID != "" && req.EmployeeID != employeeID) {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if !req.Status.CanTransitionTo(next) {
		return req, leave.ErrLeaveRequestAlreadyProcessed
	}
	req.Status = next
	r.requests[id] = req
	return req, nil
}

func newRepoWith(status leave.Status) *memLeaveRepo {
	return &memLeaveRepo{requests: map[string]leave.LeaveRequest{
		requestID: {ID: requestID, EmployeeID: aliceID, LeaveType: "Annual", Status: status},
	}}
}

func TestApply(t *testing.T) {
	repo := &memLeaveRepo{requests: map[string]leave.LeaveRequest{}}
	svc := NewLeaveService(repo)

	created, err := svc.Apply(context.Background(), user.User{ID: aliceID}, leave.ApplyLeaveRequest{
		LeaveType: " Sick ",
		StartDate: "2024-05-01",
		EndDate:   "2024-05-03",
		Reason:    "flu",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, aliceID, created.EmployeeID)
	assert.Equal(t, "Sick", created.LeaveType)
	assert.Equal(t, 3, created.Days())
}

func TestApply_EndBeforeStart(t *testing.T) {
	svc := NewLeaveService(&memLeaveRepo{requests: map[string]leave.LeaveRequest{}})

	_, err := svc.Apply(context.Background(), user.User{ID: aliceID}, leave.ApplyLeaveRequest{
		LeaveType: "Annual",
		StartDate: "2024-05-03",
		EndDate:   "2024-05-01",
		Reason:    "trip",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "end_date")
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	alice := user.User{ID: aliceID}

	t.Run("own pending request", func(t *testing.T) {
		repo := newRepoWith(leave.StatusPending)
		cancelled, err := NewLeaveService(repo).Cancel(ctx, alice, requestID)
		require.NoError(t, err)
		assert.True(t, cancelled)
		assert.Equal(t, leave.StatusCancelled, repo.requests[requestID].Status)
	})

	for _, status := range []leave.Status{leave.StatusApproved, leave.StatusRejected, leave.StatusCancelled} {
		t.Run("no-op from "+string(status), func(t *testing.T) {
			repo := newRepoWith(status)
			cancelled, err := NewLeaveService(repo).Cancel(ctx, alice, requestID)
			require.NoError(t, err)
			assert.False(t, cancelled)
			assert.Equal(t, status, repo.requests[requestID].Status)
		})
	}

	t.Run("someone else's request", func(t *testing.T) {
		repo := newRepoWith(leave.StatusPending)
		_, err := NewLeaveService(repo).Cancel(ctx, user.User{ID: bobID}, requestID)
		assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
		assert.Equal(t, leave.StatusPending, repo.requests[requestID].Status)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := NewLeaveService(newRepoWith(leave.StatusPending)).Cancel(ctx, alice, "42")
		assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
	})
}

func TestApproveReject(t *testing.T) {
	ctx := context.Background()

	repo := newRepoWith(leave.StatusPending)
	svc := NewLeaveService(repo)

	approved, err := svc.Approve(ctx, requestID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, approved.Status)

	_, err = svc.Reject(ctx, requestID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	assert.Equal(t, leave.StatusApproved, repo.requests[requestID].Status)

	_, err = svc.Approve(ctx, missingID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestDecide_RejectsNonTerminalTarget(t *testing.T) {
	repo := newRepoWith(leave.StatusPending)
	svc := NewLeaveService(repo).(*LeaveServiceImpl)

	_, err := svc.decide(context.Background(), requestID, leave.StatusPending)
	require.ErrorIs(t, err, leave.ErrInvalidTransition)
	assert.Equal(t, leave.StatusPending, repo.requests[requestID].Status)
}
