package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const (
	hrProjectsPath    = "/hr/projects"
	employeeTasksPath = "/employee/tasks"
)

type ProjectHandler interface {
	// HR / admin
	ListProjects(w http.ResponseWriter, r *http.Request)
	CreateProject(w http.ResponseWriter, r *http.Request)
	ListProjectTasks(w http.ResponseWriter, r *http.Request)
	CreateTask(w http.ResponseWriter, r *http.Request)
	UpdateTask(w http.ResponseWriter, r *http.Request)

	// Assignee
	MyTasks(w http.ResponseWriter, r *http.Request)
	UpdateTaskProgress(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	projectService project.ProjectService
	userService    user.UserService
}

func NewProjectHandler(projectService project.ProjectService, userService user.UserService) ProjectHandler {
	return &projectHandlerImpl{
		projectService: projectService,
		userService:    userService,
	}
}

// ListProjects handles GET /hr/projects
func (h *projectHandlerImpl) ListProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projects, err := h.projectService.List(ctx)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employees, err := h.userService.ListEmployees(ctx)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, map[string]interface{}{
		"projects":  project.NewProjectResponses(projects),
		"employees": user.NewUserResponses(employees),
	})
}

// CreateProject handles POST /hr/projects
func (h *projectHandlerImpl) CreateProject(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := project.CreateProjectRequest{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		StartDate:   r.PostFormValue("start_date"),
		EndDate:     r.PostFormValue("end_date"),
		ManagerID:   r.PostFormValue("manager_id"),
		Status:      r.PostFormValue("status"),
		MemberIDs:   r.PostForm["team_members"],
	}

	created, err := h.projectService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Project created", "project_id", created.ID, "by", principalFrom(r).ID)
	response.RedirectWithFlash(w, hrProjectsPath, response.FlashSuccess, "Project created!")
}

// ListProjectTasks handles GET /hr/projects/{id}/tasks
func (h *projectHandlerImpl) ListProjectTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.projectService.Tasks(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, map[string]interface{}{
		"tasks": project.NewTaskResponses(tasks),
	})
}

// CreateTask handles POST /hr/projects/{id}/tasks
func (h *projectHandlerImpl) CreateTask(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := taskFormFrom(r)
	req.ProjectID = chi.URLParam(r, "id")

	if _, err := h.projectService.AddTask(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.RedirectWithFlash(w, hrProjectsPath, response.FlashSuccess, "Task created!")
}

// UpdateTask handles POST /hr/tasks/{id}
func (h *projectHandlerImpl) UpdateTask(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := project.UpdateTaskRequest{
		ID:                chi.URLParam(r, "id"),
		CreateTaskRequest: taskFormFrom(r),
	}
	req.ProjectID = r.PostFormValue("project_id")

	if _, err := h.projectService.UpdateTask(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.RedirectWithFlash(w, hrProjectsPath, response.FlashSuccess, "Task updated!")
}

// MyTasks handles GET /employee/tasks
func (h *projectHandlerImpl) MyTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.projectService.MyTasks(r.Context(), principalFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, map[string]interface{}{
		"tasks": project.NewTaskResponses(tasks),
	})
}

// UpdateTaskProgress handles POST /employee/tasks/update/{id}
func (h *projectHandlerImpl) UpdateTaskProgress(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := project.UpdateProgressRequest{
		ID:       chi.URLParam(r, "id"),
		Progress: r.PostFormValue("progress"),
		Status:   r.PostFormValue("status"),
	}

	if _, err := h.projectService.UpdateProgress(r.Context(), principalFrom(r), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.RedirectWithFlash(w, employeeTasksPath, response.FlashSuccess, "Task updated!")
}

func taskFormFrom(r *http.Request) project.CreateTaskRequest {
	return project.CreateTaskRequest{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		AssignedTo:  r.PostFormValue("assigned_to"),
		DueDate:     r.PostFormValue("due_date"),
		Status:      r.PostFormValue("status"),
		Progress:    r.PostFormValue("progress"),
	}
}
