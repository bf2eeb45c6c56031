package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/ems-backend-go/internal/repository/postgresql"
)

type ProjectServiceImpl struct {
	projectRepo project.ProjectRepository
	taskRepo    project.TaskRepository
	userRepo    user.UserRepository
}

func NewProjectService(projectRepo project.ProjectRepository, taskRepo project.TaskRepository, userRepo user.UserRepository) project.ProjectService {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		userRepo:    userRepo,
	}
}

// List implements project.ProjectService.
func (s *ProjectServiceImpl) List(ctx context.Context) ([]project.Project, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Tasks implements project.ProjectService.
func (s *ProjectServiceImpl) Tasks(ctx context.Context, projectID string) ([]project.Task, error) {
	if !validator.IsValidUUID(projectID) {
		return nil, project.ErrProjectNotFound
	}
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project tasks: %w", err)
	}
	return tasks, nil
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	if req.Manager != nil {
		if err := s.requireUser(ctx, "manager_id", *req.Manager); err != nil {
			return project.Project{}, err
		}
	}

	created, err := s.projectRepo.Create(ctx, project.Project{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		StartDate:   req.Start,
		EndDate:     req.End,
		ManagerID:   req.Manager,
		Status:      req.ParsedState,
		MemberIDs:   dedupe(req.MemberIDs),
	})
	if err != nil {
		if postgresql.IsForeignKeyViolation(err) {
			return project.Project{}, validator.ValidationErrors{{Field: "team_members", Message: project.ErrUnknownMember.Error()}}
		}
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

// AddTask implements project.ProjectService.
func (s *ProjectServiceImpl) AddTask(ctx context.Context, req project.CreateTaskRequest) (project.Task, error) {
	if !validator.IsValidUUID(req.ProjectID) {
		return project.Task{}, project.ErrProjectNotFound
	}
	if err := req.Validate(); err != nil {
		return project.Task{}, err
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return project.Task{}, err
	}
	if err := s.requireUser(ctx, "assigned_to", req.AssignedTo); err != nil {
		return project.Task{}, err
	}

	created, err := s.taskRepo.Create(ctx, project.Task{
		ProjectID:   req.ProjectID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		AssignedTo:  req.AssignedTo,
		DueDate:     req.Due,
		Status:      req.ParsedStatus,
		Progress:    req.ParsedProgress,
	})
	if err != nil {
		return project.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// UpdateTask implements project.ProjectService.
func (s *ProjectServiceImpl) UpdateTask(ctx context.Context, req project.UpdateTaskRequest) (project.Task, error) {
	if !validator.IsValidUUID(req.ID) {
		return project.Task{}, project.ErrTaskNotFound
	}
	if err := req.Validate(); err != nil {
		return project.Task{}, err
	}

	existing, err := s.taskRepo.GetByID(ctx, req.ID)
	if err != nil {
		return project.Task{}, err
	}
	if existing.ProjectID != req.ProjectID {
		if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
			if errors.Is(err, project.ErrProjectNotFound) {
				return project.Task{}, validator.ValidationErrors{{Field: "project_id", Message: "project does not exist"}}
			}
			return project.Task{}, err
		}
	}
	if existing.AssignedTo != req.AssignedTo {
		if err := s.requireUser(ctx, "assigned_to", req.AssignedTo); err != nil {
			return project.Task{}, err
		}
	}

	existing.ProjectID = req.ProjectID
	existing.Title = strings.TrimSpace(req.Title)
	existing.Description = strings.TrimSpace(req.Description)
	existing.AssignedTo = req.AssignedTo
	existing.DueDate = req.Due
	existing.Status = req.ParsedStatus
	existing.Progress = req.ParsedProgress

	updated, err := s.taskRepo.Update(ctx, existing)
	if err != nil {
		return project.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}

// MyTasks implements project.ProjectService.
func (s *ProjectServiceImpl) MyTasks(ctx context.Context, principal user.User) ([]project.Task, error) {
	tasks, err := s.taskRepo.ListByAssignee(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateProgress implements project.ProjectService. Only the assignee may
// change a task; to anyone else it does not exist.
func (s *ProjectServiceImpl) UpdateProgress(ctx context.Context, principal user.User, req project.UpdateProgressRequest) (project.Task, error) {
	if !validator.IsValidUUID(req.ID) {
		return project.Task{}, project.ErrTaskNotFound
	}
	if err := req.Validate(); err != nil {
		return project.Task{}, err
	}

	return s.taskRepo.UpdateProgress(ctx, req.ID, principal.ID, req.ParsedProgress, req.ParsedStatus)
}

func (s *ProjectServiceImpl) requireUser(ctx context.Context, field string, id string) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return validator.ValidationErrors{{Field: field, Message: "user does not exist"}}
		}
		return err
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
