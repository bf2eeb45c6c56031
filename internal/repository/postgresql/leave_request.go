package postgresql

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

var leaveSelect = `
	SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date, lr.reason,
		   lr.status, lr.applied_on, lr.updated_at, ` + displayName("u") + `
	FROM leave_requests lr
	INNER JOIN users u ON u.id = lr.employee_id
`

func scanLeaveRequest(row rowScanner) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	var employeeName string
	err := row.Scan(
		&lr.ID,
		&lr.EmployeeID,
		&lr.LeaveType,
		&lr.StartDate,
		&lr.EndDate,
		&lr.Reason,
		&lr.Status,
		&lr.AppliedOn,
		&lr.UpdatedAt,
		&employeeName,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	lr.EmployeeName = &employeeName
	return lr, nil
}

func (r *leaveRequestRepositoryImpl) list(ctx context.Context, where string, args ...any) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, leaveSelect+where+` ORDER BY lr.applied_on DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// Create implements leave.LeaveRequestRepository. New requests always start PENDING.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, 'PENDING')
		RETURNING id, employee_id, leave_type, start_date, end_date, reason, status, applied_on, updated_at
	`

	var created leave.LeaveRequest
	err := q.QueryRow(ctx, query,
		request.EmployeeID,
		request.LeaveType,
		request.StartDate,
		request.EndDate,
		request.Reason,
	).Scan(
		&created.ID,
		&created.EmployeeID,
		&created.LeaveType,
		&created.StartDate,
		&created.EndDate,
		&created.Reason,
		&created.Status,
		&created.AppliedOn,
		&created.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	lr, err := scanLeaveRequest(q.QueryRow(ctx, leaveSelect+` WHERE lr.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return r.list(ctx, ` WHERE lr.employee_id = $1`, employeeID)
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.list(ctx, "")
}

// TransitionFromPending implements leave.LeaveRequestRepository. The status
// guard lives in the UPDATE so two concurrent decisions cannot both apply.
func (r *leaveRequestRepositoryImpl) TransitionFromPending(ctx context.Context, id, employeeID string, next leave.Status) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'PENDING' AND ($3::text = '' OR employee_id::text = $3::text)
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, next, id, employeeID).Scan(&updatedID)
	if err == nil {
		return r.GetByID(ctx, updatedID)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveRequest{}, err
	}

	// Nothing updated: tell a missing (or foreign) request from a decided one.
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if employeeID != "" && current.EmployeeID != employeeID {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return current, leave.ErrLeaveRequestAlreadyProcessed
}
