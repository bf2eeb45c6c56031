package dashboard

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
	}
}

// GetDashboard returns the counts for the principal's role. Each count is
// one query and they run in parallel.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, principal user.User) (*dashboard.DashboardResponse, error) {
	resp := &dashboard.DashboardResponse{
		Kind: user.DashboardFor(principal),
		User: user.NewUserResponse(principal),
	}

	var err error
	switch resp.Kind {
	case user.DashboardAdmin:
		resp.Admin, err = s.adminDashboard(ctx)
	case user.DashboardHR:
		resp.HR, err = s.hrDashboard(ctx)
	default:
		resp.Employee, err = s.employeeDashboard(ctx, principal.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s dashboard: %w", resp.Kind, err)
	}

	return resp, nil
}

func (s *DashboardServiceImpl) adminDashboard(ctx context.Context) (*dashboard.AdminDashboard, error) {
	var out dashboard.AdminDashboard
	g, gCtx := errgroup.WithContext(ctx)

	// 1. Employees
	g.Go(func() error {
		n, err := s.CountUsersByRole(gCtx, user.RoleEmployee)
		out.EmployeeCount = n
		return err
	})

	// 2. HR managers
	g.Go(func() error {
		n, err := s.CountUsersByRole(gCtx, user.RoleHR)
		out.HRCount = n
		return err
	})

	// 3. Projects
	g.Go(func() error {
		n, err := s.CountProjects(gCtx)
		out.TotalProjects = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *DashboardServiceImpl) hrDashboard(ctx context.Context) (*dashboard.HRDashboard, error) {
	var out dashboard.HRDashboard
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.CountOngoingProjects(gCtx)
		out.ActiveProjects = n
		return err
	})
	g.Go(func() error {
		n, err := s.CountPendingLeaves(gCtx)
		out.PendingLeaves = n
		return err
	})
	g.Go(func() error {
		n, err := s.CountOpenJobs(gCtx)
		out.OpenJobs = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *DashboardServiceImpl) employeeDashboard(ctx context.Context, userID string) (*dashboard.EmployeeDashboard, error) {
	var out dashboard.EmployeeDashboard
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.CountMemberProjects(gCtx, userID)
		out.MyProjects = n
		return err
	})
	g.Go(func() error {
		n, err := s.CountOpenTasks(gCtx, userID)
		out.MyTasks = n
		return err
	})
	g.Go(func() error {
		n, err := s.CountLeaves(gCtx, userID)
		out.MyLeaves = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
