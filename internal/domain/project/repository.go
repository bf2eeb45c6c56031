package project

import "context"

type ProjectRepository interface {
	// Create inserts the project and its team members.
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	List(ctx context.Context) ([]Project, error)
}

type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	Update(ctx context.Context, t Task) (Task, error)
	// UpdateProgress changes progress and status of a task assigned to
	// assigneeID, returning ErrTaskNotFound for anyone else's task.
	UpdateProgress(ctx context.Context, id, assigneeID string, progress int, status TaskStatus) (Task, error)
	ListByAssignee(ctx context.Context, assigneeID string) ([]Task, error)
	ListByProject(ctx context.Context, projectID string) ([]Task, error)
}
