package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db       *database.DB
	attRepo  *attendanceRepository
	projRepo *projectRepositoryImpl
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{
		db:       db,
		attRepo:  &attendanceRepository{db: db},
		projRepo: &projectRepositoryImpl{db: db},
	}
}

// RoleCounts returns the per-role head count in a single query
func (r *reportRepositoryImpl) RoleCounts(ctx context.Context) (report.RoleCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE role = 'ADMIN'),
			COUNT(*) FILTER (WHERE role = 'HR'),
			COUNT(*) FILTER (WHERE role = 'EMPLOYEE')
		FROM users
	`

	var counts report.RoleCounts
	if err := q.QueryRow(ctx, query).Scan(&counts.AdminCount, &counts.HRCount, &counts.EmployeeCount); err != nil {
		return report.RoleCounts{}, fmt.Errorf("failed to count roles: %w", err)
	}
	return counts, nil
}

// DepartmentCounts groups users by department; users without one form a NULL group
func (r *reportRepositoryImpl) DepartmentCounts(ctx context.Context) ([]report.DepartmentCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT NULLIF(department, ''), COUNT(*)
		FROM users
		GROUP BY NULLIF(department, '')
		ORDER BY NULLIF(department, '') NULLS LAST
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count departments: %w", err)
	}
	defer rows.Close()

	stats := []report.DepartmentCount{}
	for rows.Next() {
		var s report.DepartmentCount
		if err := rows.Scan(&s.Department, &s.Count); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// AttendanceRecords returns every attendance row, newest date first
func (r *reportRepositoryImpl) AttendanceRecords(ctx context.Context) ([]attendance.Attendance, error) {
	return r.attRepo.List(ctx)
}

// ProjectRecords returns every project
func (r *reportRepositoryImpl) ProjectRecords(ctx context.Context) ([]project.Project, error) {
	return r.projRepo.List(ctx)
}
