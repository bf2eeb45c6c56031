package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

var projectSelect = `
	SELECT p.id, p.name, p.description, p.start_date, p.end_date, p.manager_id, p.status, p.created_at,
		   ARRAY(SELECT pm.user_id::text FROM project_members pm WHERE pm.project_id = p.id ORDER BY pm.user_id),
		   ARRAY(SELECT t.progress FROM tasks t WHERE t.project_id = p.id ORDER BY t.created_at),
		   CASE WHEN m.id IS NULL THEN NULL ELSE ` + displayName("m") + ` END
	FROM projects p
	LEFT JOIN users m ON m.id = p.manager_id
`

func scanProject(row rowScanner) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.StartDate,
		&p.EndDate,
		&p.ManagerID,
		&p.Status,
		&p.CreatedAt,
		&p.MemberIDs,
		&p.TaskProgress,
		&p.ManagerName,
	)
	return p, err
}

// Create implements project.ProjectRepository.
func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	var created project.Project

	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		var id string
		err := q.QueryRow(ctx, `
			INSERT INTO projects (name, description, start_date, end_date, manager_id, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, p.Name, p.Description, p.StartDate, p.EndDate, p.ManagerID, p.Status).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert project: %w", err)
		}

		if len(p.MemberIDs) > 0 {
			_, err = q.Exec(ctx, `
				INSERT INTO project_members (project_id, user_id)
				SELECT $1::uuid, member::uuid FROM UNNEST($2::text[]) AS member
				ON CONFLICT DO NOTHING
			`, id, p.MemberIDs)
			if err != nil {
				return fmt.Errorf("insert project members: %w", err)
			}
		}

		created, err = r.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return project.Project{}, err
	}

	return created, nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProject(q.QueryRow(ctx, projectSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

// List implements project.ProjectRepository.
func (r *projectRepositoryImpl) List(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, projectSelect+` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) project.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

var taskSelect = `
	SELECT t.id, t.project_id, t.title, t.description, t.assigned_to, t.due_date, t.status, t.progress,
		   t.created_at, t.updated_at, p.name, ` + displayName("u") + `
	FROM tasks t
	INNER JOIN projects p ON p.id = t.project_id
	INNER JOIN users u ON u.id = t.assigned_to
`

func scanTask(row rowScanner) (project.Task, error) {
	var t project.Task
	var projectName, assigneeName string
	err := row.Scan(
		&t.ID,
		&t.ProjectID,
		&t.Title,
		&t.Description,
		&t.AssignedTo,
		&t.DueDate,
		&t.Status,
		&t.Progress,
		&t.CreatedAt,
		&t.UpdatedAt,
		&projectName,
		&assigneeName,
	)
	if err != nil {
		return project.Task{}, err
	}
	t.ProjectName = &projectName
	t.AssigneeName = &assigneeName
	return t, nil
}

func (r *taskRepositoryImpl) list(ctx context.Context, where string, args ...any) ([]project.Task, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, taskSelect+where+` ORDER BY t.due_date, t.created_at`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []project.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Create implements project.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, t project.Task) (project.Task, error) {
	q := GetQuerier(ctx, r.db)

	var id string
	err := q.QueryRow(ctx, `
		INSERT INTO tasks (project_id, title, description, assigned_to, due_date, status, progress)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, t.ProjectID, t.Title, t.Description, t.AssignedTo, t.DueDate, t.Status, t.Progress).Scan(&id)
	if err != nil {
		return project.Task{}, err
	}
	return r.GetByID(ctx, id)
}

// GetByID implements project.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (project.Task, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTask(q.QueryRow(ctx, taskSelect+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Task{}, project.ErrTaskNotFound
		}
		return project.Task{}, err
	}
	return t, nil
}

// Update implements project.TaskRepository.
func (r *taskRepositoryImpl) Update(ctx context.Context, t project.Task) (project.Task, error) {
	q := GetQuerier(ctx, r.db)

	var id string
	err := q.QueryRow(ctx, `
		UPDATE tasks
		SET project_id = $1, title = $2, description = $3, assigned_to = $4, due_date = $5,
			status = $6, progress = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING id
	`, t.ProjectID, t.Title, t.Description, t.AssignedTo, t.DueDate, t.Status, t.Progress, t.ID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Task{}, project.ErrTaskNotFound
		}
		return project.Task{}, err
	}
	return r.GetByID(ctx, id)
}

// UpdateProgress implements project.TaskRepository.
func (r *taskRepositoryImpl) UpdateProgress(ctx context.Context, id, assigneeID string, progress int, status project.TaskStatus) (project.Task, error) {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx, `
		UPDATE tasks
		SET progress = $1, status = $2, updated_at = NOW()
		WHERE id = $3 AND assigned_to = $4
		RETURNING id
	`, progress, status, id, assigneeID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Task{}, project.ErrTaskNotFound
		}
		return project.Task{}, err
	}
	return r.GetByID(ctx, updatedID)
}

// ListByAssignee implements project.TaskRepository.
func (r *taskRepositoryImpl) ListByAssignee(ctx context.Context, assigneeID string) ([]project.Task, error) {
	return r.list(ctx, ` WHERE t.assigned_to = $1`, assigneeID)
}

// ListByProject implements project.TaskRepository.
func (r *taskRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]project.Task, error) {
	return r.list(ctx, ` WHERE t.project_id = $1`, projectID)
}
