package project

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	hrID      = "10000000-0000-0000-0000-000000000001"
	aliceID   = "10000000-0000-0000-0000-000000000002"
	bobID     = "10000000-0000-0000-0000-000000000003"
	ghostID   = "10000000-0000-0000-0000-00000000dead"
	projectID = "20000000-0000-0000-0000-000000000001"
	taskID    = "30000000-0000-0000-0000-000000000001"
)

type memProjectRepo struct {
	projects map[string]project.Project
}

func (r *memProjectRepo) Create(ctx context.Context, p project.Project) (project.Project, error) {
	p.ID = projectID
	r.projects[p.ID] = p
	return p, nil
}

func (r *memProjectRepo) GetByID(ctx context.Context, id string) (project.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return project.Project{}, project.ErrProjectNotFound
	}
	return p, nil
}

func (r *memProjectRepo) List(ctx context.Context) ([]project.Project, error) {
	out := []project.Project{}
	for _, p := range r.projects {
		out = append(out, p)
	}
	return out, nil
}

type memTaskRepo struct {
	tasks map[string]project.Task
}

func (r *memTaskRepo) Create(ctx context.Context, t project.Task) (project.Task, error) {
	t.ID = taskID
	r.tasks[t.ID] = t
	return t, nil
}

func (r *memTaskRepo) GetByID(ctx context.Context, id string) (project.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return project.Task{}, project.ErrTaskNotFound
	}
	return t, nil
}

func (r *memTaskRepo) Update(ctx context.Context, t project.Task) (project.Task, error) {
	r.tasks[t.ID] = t
	return t, nil
}

func (r *memTaskRepo) UpdateProgress(ctx context.Context, id, assigneeID string, progress int, status project.TaskStatus) (project.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.AssignedTo != assigneeID {
		return project.Task{}, project.ErrTaskNotFound
	}
	t.Progress = progress
	t.Status = status
	r.tasks[id] = t
	return t, nil
}

func (r *memTaskRepo) ListByAssignee(ctx context.Context, assigneeID string) ([]project.Task, error) {
	out := []project.Task{}
	for _, t := range r.tasks {
		if t.AssignedTo == assigneeID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTaskRepo) ListByProject(ctx context.Context, projectID string) ([]project.Task, error) {
	out := []project.Task{}
	for _, t := range r.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	user.UserRepository
	ids map[string]bool
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	if !f.ids[id] {
		return user.User{}, user.ErrUserNotFound
	}
	return user.User{ID: id}, nil
}

func newTestService() (project.ProjectService, *memProjectRepo, *memTaskRepo) {
	projects := &memProjectRepo{projects: map[string]project.Project{}}
	tasks := &memTaskRepo{tasks: map[string]project.Task{}}
	users := &fakeUserRepo{ids: map[string]bool{hrID: true, aliceID: true, bobID: true}}
	return NewProjectService(projects, tasks, users), projects, tasks
}

func TestCreateProject(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Create(context.Background(), project.CreateProjectRequest{
		Name:      "Payroll revamp",
		StartDate: "2024-01-01",
		EndDate:   "2024-06-30",
		ManagerID: hrID,
		MemberIDs: []string{aliceID, bobID, aliceID},
	})
	require.NoError(t, err)
	assert.Equal(t, project.StatusPlanned, created.Status)
	assert.Equal(t, []string{aliceID, bobID}, created.MemberIDs)
	require.NotNil(t, created.ManagerID)
	assert.Equal(t, 0.0, created.Progress())
}

func TestCreateProject_UnknownManager(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), project.CreateProjectRequest{
		Name:      "Ghost",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-02",
		ManagerID: ghostID,
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "manager_id")
}

func TestAddTask(t *testing.T) {
	svc, projects, _ := newTestService()
	projects.projects[projectID] = project.Project{ID: projectID, Name: "P"}

	task, err := svc.AddTask(context.Background(), project.CreateTaskRequest{
		ProjectID:  projectID,
		Title:      "Write docs",
		AssignedTo: aliceID,
		DueDate:    "2024-02-01",
		Progress:   "150",
	})
	require.NoError(t, err)
	assert.Equal(t, project.TaskStatusTodo, task.Status)
	assert.Equal(t, 100, task.Progress)

	_, err = svc.AddTask(context.Background(), project.CreateTaskRequest{
		ProjectID:  ghostID,
		Title:      "Nope",
		AssignedTo: aliceID,
		DueDate:    "2024-02-01",
	})
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestTasks(t *testing.T) {
	svc, projects, tasks := newTestService()
	projects.projects[projectID] = project.Project{ID: projectID, Name: "P"}
	tasks.tasks[taskID] = project.Task{ID: taskID, ProjectID: projectID, AssignedTo: aliceID}

	list, err := svc.Tasks(context.Background(), projectID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, taskID, list[0].ID)

	_, err = svc.Tasks(context.Background(), ghostID)
	assert.ErrorIs(t, err, project.ErrProjectNotFound)

	_, err = svc.Tasks(context.Background(), "42")
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestUpdateProgress(t *testing.T) {
	ctx := context.Background()
	svc, _, tasks := newTestService()
	tasks.tasks[taskID] = project.Task{ID: taskID, ProjectID: projectID, AssignedTo: aliceID, Status: project.TaskStatusTodo}

	t.Run("assignee clamps progress", func(t *testing.T) {
		updated, err := svc.UpdateProgress(ctx, user.User{ID: aliceID}, project.UpdateProgressRequest{
			ID: taskID, Progress: "-20", Status: "in_progress",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Progress)
		assert.Equal(t, project.TaskStatusInProgress, updated.Status)
	})

	t.Run("non assignee gets not found", func(t *testing.T) {
		_, err := svc.UpdateProgress(ctx, user.User{ID: bobID}, project.UpdateProgressRequest{
			ID: taskID, Progress: "90", Status: "DONE",
		})
		assert.ErrorIs(t, err, project.ErrTaskNotFound)
		assert.Equal(t, project.TaskStatusInProgress, tasks.tasks[taskID].Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.UpdateProgress(ctx, user.User{ID: aliceID}, project.UpdateProgressRequest{
			ID: taskID, Progress: "50", Status: "BLOCKED",
		})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "status")
	})

	t.Run("non integer progress", func(t *testing.T) {
		_, err := svc.UpdateProgress(ctx, user.User{ID: aliceID}, project.UpdateProgressRequest{
			ID: taskID, Progress: "half", Status: "DONE",
		})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "progress")
	})
}

func TestUpdateTask_Reassign(t *testing.T) {
	svc, projects, tasks := newTestService()
	projects.projects[projectID] = project.Project{ID: projectID}
	tasks.tasks[taskID] = project.Task{ID: taskID, ProjectID: projectID, AssignedTo: aliceID}

	updated, err := svc.UpdateTask(context.Background(), project.UpdateTaskRequest{
		ID: taskID,
		CreateTaskRequest: project.CreateTaskRequest{
			ProjectID:  projectID,
			Title:      "Renamed",
			AssignedTo: bobID,
			DueDate:    "2024-03-01",
			Status:     "DONE",
			Progress:   "100",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, bobID, updated.AssignedTo)
	assert.Equal(t, project.TaskStatusDone, updated.Status)

	_, err = svc.UpdateTask(context.Background(), project.UpdateTaskRequest{
		ID: taskID,
		CreateTaskRequest: project.CreateTaskRequest{
			ProjectID: projectID, Title: "x", AssignedTo: ghostID, DueDate: "2024-03-01",
		},
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "assigned_to")
}
