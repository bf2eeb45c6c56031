package dashboard

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

// DashboardRepository defines the count queries behind the dashboards
type DashboardRepository interface {
	CountUsersByRole(ctx context.Context, role user.Role) (int64, error)
	CountProjects(ctx context.Context) (int64, error)
	CountOngoingProjects(ctx context.Context) (int64, error)
	CountPendingLeaves(ctx context.Context) (int64, error)
	CountOpenJobs(ctx context.Context) (int64, error)

	// Scoped to one user
	CountMemberProjects(ctx context.Context, userID string) (int64, error)
	CountOpenTasks(ctx context.Context, assigneeID string) (int64, error)
	CountLeaves(ctx context.Context, employeeID string) (int64, error)
}
