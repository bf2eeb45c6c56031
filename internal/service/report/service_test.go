package report

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/systemlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct{}

func (fakeReportRepo) RoleCounts(ctx context.Context) (report.RoleCounts, error) {
	return report.RoleCounts{AdminCount: 1, HRCount: 2, EmployeeCount: 3}, nil
}

func (fakeReportRepo) DepartmentCounts(ctx context.Context) ([]report.DepartmentCount, error) {
	eng := "Engineering"
	return []report.DepartmentCount{{Department: &eng, Count: 4}, {Count: 1}}, nil
}

func (fakeReportRepo) AttendanceRecords(ctx context.Context) ([]attendance.Attendance, error) {
	in := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	name := "Alice Smith"
	return []attendance.Attendance{
		{Date: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), EmployeeID: "e-1", EmployeeName: &name, CheckIn: &in},
	}, nil
}

func (fakeReportRepo) ProjectRecords(ctx context.Context) ([]project.Project, error) {
	return []project.Project{{
		Name:      "Apollo",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		Status:    project.StatusOngoing,
	}}, nil
}

type fakeLogRepo struct {
	limit int
}

func (f *fakeLogRepo) Append(ctx context.Context, e systemlog.Entry) (systemlog.Entry, error) {
	return e, nil
}

func (f *fakeLogRepo) Recent(ctx context.Context, limit int) ([]systemlog.Entry, error) {
	f.limit = limit
	return []systemlog.Entry{{Action: systemlog.ActionLoggedIn}}, nil
}

func newTestService() (*ReportServiceImpl, *fakeLogRepo) {
	logs := &fakeLogRepo{}
	svc := NewReportService(fakeReportRepo{}, logs).(*ReportServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 6, 4, 10, 0, 0, 0, time.UTC) }
	return svc, logs
}

func TestPreview_Attendance(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.Preview(context.Background(), "attendance")
	require.NoError(t, err)
	assert.Equal(t, "Attendance", p.Title)
	assert.Equal(t, []string{"Date", "Employee", "In", "Out"}, p.Headers)
	assert.Equal(t, [][]string{{"2024-06-03", "Alice Smith", "09:00", "-"}}, p.Records)
	assert.Equal(t, "2024-06-04T10:00:00Z", p.Timestamp)
}

func TestPreview_Projects(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.Preview(context.Background(), "projects")
	require.NoError(t, err)
	assert.Equal(t, []string{"Project Name", "Start Date", "End Date", "Status"}, p.Headers)
	assert.Equal(t, [][]string{{"Apollo", "2024-01-01", "2024-12-31", "ONGOING"}}, p.Records)
}

func TestPreview_UnknownType(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.Preview(context.Background(), "leave_summary")
	require.NoError(t, err)
	assert.Equal(t, "Leave Summary", p.Title)
	assert.Empty(t, p.Headers)
	assert.Empty(t, p.Records)
	assert.NotNil(t, p.Records)
}

func TestMonitor_UsesLimit(t *testing.T) {
	svc, logs := newTestService()

	entries, err := svc.Monitor(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, MonitorLimit, logs.limit)
}

func TestRolesAndDepartments(t *testing.T) {
	svc, _ := newTestService()

	roles, err := svc.Roles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), roles.EmployeeCount)

	depts, err := svc.Departments(context.Background())
	require.NoError(t, err)
	assert.Len(t, depts, 2)
}
