package dashboard

import "github.com/cmlabs-hris/ems-backend-go/internal/domain/user"

// ========== ROLE DASHBOARDS ==========

// AdminDashboard holds organisation-wide head counts
type AdminDashboard struct {
	EmployeeCount int64 `json:"employee_count"`
	HRCount       int64 `json:"hr_count"`
	TotalProjects int64 `json:"total_projects"`
}

// HRDashboard holds the HR work queue counts
type HRDashboard struct {
	ActiveProjects int64 `json:"active_projects"` // status = ONGOING
	PendingLeaves  int64 `json:"pending_leaves"`
	OpenJobs       int64 `json:"open_jobs"` // is_active = true
}

// EmployeeDashboard holds counts scoped to the signed-in employee
type EmployeeDashboard struct {
	MyProjects int64 `json:"my_projects"` // team memberships
	MyTasks    int64 `json:"my_tasks"`    // TODO or IN_PROGRESS
	MyLeaves   int64 `json:"my_leaves"`
}

// ========== COMBINED DASHBOARD ==========

// DashboardResponse carries exactly one of the role dashboards
type DashboardResponse struct {
	Kind     user.DashboardKind `json:"dashboard"`
	User     user.UserResponse  `json:"user"`
	Admin    *AdminDashboard    `json:"admin,omitempty"`
	HR       *HRDashboard       `json:"hr,omitempty"`
	Employee *EmployeeDashboard `json:"employee,omitempty"`
}
