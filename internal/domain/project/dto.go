package project

import (
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Name        string
	Description string
	StartDate   string
	EndDate     string
	ManagerID   string
	Status      string
	MemberIDs   []string

	// Set by Validate
	Start       time.Time `json:"-"`
	End         time.Time `json:"-"`
	ParsedState Status    `json:"-"`
	Manager     *string   `json:"-"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if len(r.Name) > 200 {
		errs.Add("name", "name must not exceed 200 characters")
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}
	if startOK && endOK && end.Before(start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}
	r.Start, r.End = start, end

	r.ParsedState = StatusPlanned
	if !validator.IsEmpty(r.Status) {
		st, err := ParseStatus(r.Status)
		if err != nil {
			errs.Add("status", "status must be one of PLANNED, ONGOING, COMPLETED, ONHOLD")
		}
		r.ParsedState = st
	}

	r.Manager = nil
	if !validator.IsEmpty(r.ManagerID) {
		if !validator.IsValidUUID(r.ManagerID) {
			errs.Add("manager_id", "manager_id must be a valid UUID")
		} else {
			m := r.ManagerID
			r.Manager = &m
		}
	}

	for _, id := range r.MemberIDs {
		if !validator.IsValidUUID(id) {
			errs.Add("team_members", "team_members must contain valid UUIDs")
			break
		}
	}

	return errs.Err()
}

type CreateTaskRequest struct {
	ProjectID   string
	Title       string
	Description string
	AssignedTo  string
	DueDate     string
	Status      string
	Progress    string

	// Set by Validate
	Due            time.Time  `json:"-"`
	ParsedStatus   TaskStatus `json:"-"`
	ParsedProgress int        `json:"-"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ProjectID) {
		errs.Add("project_id", "project_id must be a valid UUID")
	}
	if validator.IsEmpty(r.Title) {
		errs.Add("title", "title is required")
	} else if len(r.Title) > 200 {
		errs.Add("title", "title must not exceed 200 characters")
	}
	if !validator.IsValidUUID(r.AssignedTo) {
		errs.Add("assigned_to", "assigned_to must be a valid UUID")
	}

	due, ok := validator.IsValidDate(r.DueDate)
	if !ok {
		errs.Add("due_date", "due_date must be in YYYY-MM-DD format")
	}
	r.Due = due

	validateStatusAndProgress(&errs, r.Status, r.Progress, &r.ParsedStatus, &r.ParsedProgress)

	return errs.Err()
}

// UpdateTaskRequest is the HR/Admin edit with every field replaceable
type UpdateTaskRequest struct {
	ID string
	CreateTaskRequest
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidUUID(r.ID) {
		errs.Add("id", "id must be a valid UUID")
	}
	if err := r.CreateTaskRequest.Validate(); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, ve...)
		}
	}
	return errs.Err()
}

// UpdateProgressRequest is what an assignee may change
type UpdateProgressRequest struct {
	ID       string
	Progress string
	Status   string

	// Set by Validate
	ParsedStatus   TaskStatus `json:"-"`
	ParsedProgress int        `json:"-"`
}

func (r *UpdateProgressRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs.Add("id", "id must be a valid UUID")
	}
	validateStatusAndProgress(&errs, r.Status, r.Progress, &r.ParsedStatus, &r.ParsedProgress)

	return errs.Err()
}

// validateStatusAndProgress defaults an empty status to TODO and an empty
// progress to 0. Out of range progress is clamped, not rejected.
func validateStatusAndProgress(errs *validator.ValidationErrors, status, progress string, outStatus *TaskStatus, outProgress *int) {
	*outStatus = TaskStatusTodo
	if !validator.IsEmpty(status) {
		st, err := ParseTaskStatus(status)
		if err != nil {
			errs.Add("status", "status must be one of TODO, IN_PROGRESS, DONE")
		}
		*outStatus = st
	}

	*outProgress = 0
	if p := strings.TrimSpace(progress); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			errs.Add("progress", "progress must be a whole number")
			return
		}
		*outProgress = ClampProgress(n)
	}
}

type ProjectResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	ManagerID   *string  `json:"manager_id"`
	ManagerName *string  `json:"manager_name,omitempty"`
	Status      string   `json:"status"`
	Progress    float64  `json:"progress"`
	TeamMembers []string `json:"team_members"`
	TaskCount   int      `json:"task_count"`
}

func NewProjectResponses(projects []Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		members := p.MemberIDs
		if members == nil {
			members = []string{}
		}
		out = append(out, ProjectResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			StartDate:   p.StartDate.Format("2006-01-02"),
			EndDate:     p.EndDate.Format("2006-01-02"),
			ManagerID:   p.ManagerID,
			ManagerName: p.ManagerName,
			Status:      string(p.Status),
			Progress:    p.Progress(),
			TeamMembers: members,
			TaskCount:   len(p.TaskProgress),
		})
	}
	return out
}

type TaskResponse struct {
	ID           string  `json:"id"`
	ProjectID    string  `json:"project_id"`
	ProjectName  *string `json:"project_name,omitempty"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	AssignedTo   string  `json:"assigned_to"`
	AssigneeName *string `json:"assignee_name,omitempty"`
	DueDate      string  `json:"due_date"`
	Status       string  `json:"status"`
	Progress     int     `json:"progress"`
}

func NewTaskResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:           t.ID,
		ProjectID:    t.ProjectID,
		ProjectName:  t.ProjectName,
		Title:        t.Title,
		Description:  t.Description,
		AssignedTo:   t.AssignedTo,
		AssigneeName: t.AssigneeName,
		DueDate:      t.DueDate.Format("2006-01-02"),
		Status:       string(t.Status),
		Progress:     t.Progress,
	}
}

func NewTaskResponses(tasks []Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskResponse(t))
	}
	return out
}
