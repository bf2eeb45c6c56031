package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) count(ctx context.Context, name, query string, args ...any) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", name, err)
	}
	return n, nil
}

// CountUsersByRole counts users by stored role. The superuser flag is
// ignored, so a superuser with role EMPLOYEE counts as an employee.
func (r *dashboardRepositoryImpl) CountUsersByRole(ctx context.Context, role user.Role) (int64, error) {
	return r.count(ctx, "users", `SELECT COUNT(*) FROM users WHERE role = $1`, role)
}

func (r *dashboardRepositoryImpl) CountProjects(ctx context.Context) (int64, error) {
	return r.count(ctx, "projects", `SELECT COUNT(*) FROM projects`)
}

func (r *dashboardRepositoryImpl) CountOngoingProjects(ctx context.Context) (int64, error) {
	return r.count(ctx, "ongoing projects", `SELECT COUNT(*) FROM projects WHERE status = 'ONGOING'`)
}

func (r *dashboardRepositoryImpl) CountPendingLeaves(ctx context.Context) (int64, error) {
	return r.count(ctx, "pending leaves", `SELECT COUNT(*) FROM leave_requests WHERE status = 'PENDING'`)
}

func (r *dashboardRepositoryImpl) CountOpenJobs(ctx context.Context) (int64, error) {
	return r.count(ctx, "open jobs", `SELECT COUNT(*) FROM job_openings WHERE is_active`)
}

func (r *dashboardRepositoryImpl) CountMemberProjects(ctx context.Context, userID string) (int64, error) {
	return r.count(ctx, "member projects", `SELECT COUNT(*) FROM project_members WHERE user_id = $1`, userID)
}

func (r *dashboardRepositoryImpl) CountOpenTasks(ctx context.Context, assigneeID string) (int64, error) {
	return r.count(ctx, "open tasks",
		`SELECT COUNT(*) FROM tasks WHERE assigned_to = $1 AND status IN ('TODO', 'IN_PROGRESS')`, assigneeID)
}

func (r *dashboardRepositoryImpl) CountLeaves(ctx context.Context, employeeID string) (int64, error) {
	return r.count(ctx, "leaves", `SELECT COUNT(*) FROM leave_requests WHERE employee_id = $1`, employeeID)
}
