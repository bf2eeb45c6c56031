package report

import (
	"strings"
	"time"
	"unicode"
)

// ========================================
// REPORT PREVIEW
// ========================================

type Type string

const (
	TypeAttendance Type = "attendance"
	TypeProjects   Type = "projects"
)

var (
	AttendanceHeaders = []string{"Date", "Employee", "In", "Out"}
	ProjectHeaders    = []string{"Project Name", "Start Date", "End Date", "Status"}
)

// Title turns a report tag such as "leave_summary" into "Leave Summary".
func Title(reportType string) string {
	var b strings.Builder
	upper := true
	for _, r := range reportType {
		switch {
		case r == '_':
			b.WriteRune(' ')
			upper = true
		case unicode.IsLetter(r):
			if upper {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
			upper = false
		default:
			b.WriteRune(r)
			upper = true
		}
	}
	return b.String()
}

// Preview is a projected record set. Unknown report types yield an empty
// preview rather than an error.
type Preview struct {
	ReportType string     `json:"report_type"`
	Title      string     `json:"title"`
	Timestamp  string     `json:"timestamp"`
	Headers    []string   `json:"headers"`
	Records    [][]string `json:"records"`
}

func NewPreview(reportType string, now time.Time) Preview {
	return Preview{
		ReportType: reportType,
		Title:      Title(reportType),
		Timestamp:  now.Format(time.RFC3339),
		Headers:    []string{},
		Records:    [][]string{},
	}
}

// ========================================
// AGGREGATES
// ========================================

type RoleCounts struct {
	AdminCount    int64 `json:"admin_count"`
	HRCount       int64 `json:"hr_count"`
	EmployeeCount int64 `json:"employee_count"`
}

// DepartmentCount is one row of the head count per department report
type DepartmentCount struct {
	Department *string `json:"department"`
	Count      int64   `json:"count"`
}
