package project

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

type ProjectService interface {
	List(ctx context.Context) ([]Project, error)
	Create(ctx context.Context, req CreateProjectRequest) (Project, error)
	// Tasks lists the tasks of one project.
	Tasks(ctx context.Context, projectID string) ([]Task, error)
	AddTask(ctx context.Context, req CreateTaskRequest) (Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (Task, error)
	MyTasks(ctx context.Context, principal user.User) ([]Task, error)
	UpdateProgress(ctx context.Context, principal user.User, req UpdateProgressRequest) (Task, error)
}
