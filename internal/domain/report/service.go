package report

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/systemlog"
)

// ReportService defines the interface for report generation
type ReportService interface {
	Roles(ctx context.Context) (RoleCounts, error)
	Departments(ctx context.Context) ([]DepartmentCount, error)
	// Monitor returns the latest system log entries
	Monitor(ctx context.Context) ([]systemlog.Entry, error)
	Preview(ctx context.Context, reportType string) (Preview, error)
}
