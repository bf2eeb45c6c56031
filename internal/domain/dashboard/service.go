package dashboard

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard dispatches on the principal's role
	GetDashboard(ctx context.Context, principal user.User) (*DashboardResponse, error)
}
