package report

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/project"
)

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	RoleCounts(ctx context.Context) (RoleCounts, error)
	DepartmentCounts(ctx context.Context) ([]DepartmentCount, error)

	// Preview sources
	AttendanceRecords(ctx context.Context) ([]attendance.Attendance, error)
	ProjectRecords(ctx context.Context) ([]project.Project, error)
}
