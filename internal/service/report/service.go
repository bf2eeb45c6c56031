package report

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/systemlog"
)

// MonitorLimit is how many system log entries the monitor shows.
const MonitorLimit = 50

type ReportServiceImpl struct {
	reportRepo    report.ReportRepository
	systemLogRepo systemlog.SystemLogRepository
	now           func() time.Time
}

func NewReportService(reportRepo report.ReportRepository, systemLogRepo systemlog.SystemLogRepository) report.ReportService {
	return &ReportServiceImpl{
		reportRepo:    reportRepo,
		systemLogRepo: systemLogRepo,
		now:           time.Now,
	}
}

// Roles implements report.ReportService.
func (s *ReportServiceImpl) Roles(ctx context.Context) (report.RoleCounts, error) {
	counts, err := s.reportRepo.RoleCounts(ctx)
	if err != nil {
		return report.RoleCounts{}, fmt.Errorf("failed to count roles: %w", err)
	}
	return counts, nil
}

// Departments implements report.ReportService.
func (s *ReportServiceImpl) Departments(ctx context.Context) ([]report.DepartmentCount, error) {
	counts, err := s.reportRepo.DepartmentCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count departments: %w", err)
	}
	return counts, nil
}

// Monitor implements report.ReportService.
func (s *ReportServiceImpl) Monitor(ctx context.Context) ([]systemlog.Entry, error) {
	entries, err := s.systemLogRepo.Recent(ctx, MonitorLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load system logs: %w", err)
	}
	return entries, nil
}

// Preview implements report.ReportService.
func (s *ReportServiceImpl) Preview(ctx context.Context, reportType string) (report.Preview, error) {
	preview := report.NewPreview(reportType, s.now())

	switch report.Type(reportType) {
	case report.TypeAttendance:
		rows, err := s.reportRepo.AttendanceRecords(ctx)
		if err != nil {
			return report.Preview{}, fmt.Errorf("failed to load attendance records: %w", err)
		}
		preview.Headers = report.AttendanceHeaders
		for _, a := range rows {
			employee := a.EmployeeID
			if a.EmployeeName != nil {
				employee = *a.EmployeeName
			}
			preview.Records = append(preview.Records, []string{
				a.Date.Format("2006-01-02"),
				employee,
				clock(a.CheckIn),
				clock(a.CheckOut),
			})
		}

	case report.TypeProjects:
		rows, err := s.reportRepo.ProjectRecords(ctx)
		if err != nil {
			return report.Preview{}, fmt.Errorf("failed to load project records: %w", err)
		}
		preview.Headers = report.ProjectHeaders
		for _, p := range rows {
			preview.Records = append(preview.Records, []string{
				p.Name,
				p.StartDate.Format("2006-01-02"),
				p.EndDate.Format("2006-01-02"),
				string(p.Status),
			})
		}
	}

	return preview, nil
}

func clock(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("15:04")
}
