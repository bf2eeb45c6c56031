package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/ems-backend-go/internal/service/file"
	"github.com/go-chi/chi/v5"
)

const hrRecruitmentPath = "/hr/recruitment"

type RecruitmentHandler interface {
	ListJobs(w http.ResponseWriter, r *http.Request)
	PostJob(w http.ResponseWriter, r *http.Request)
	CloseJob(w http.ResponseWriter, r *http.Request)
	AddCandidate(w http.ResponseWriter, r *http.Request)
	UpdateCandidate(w http.ResponseWriter, r *http.Request)
}

type recruitmentHandlerImpl struct {
	recruitmentService recruitment.RecruitmentService
	fileService        file.FileService
}

func NewRecruitmentHandler(recruitmentService recruitment.RecruitmentService, fileService file.FileService) RecruitmentHandler {
	return &recruitmentHandlerImpl{
		recruitmentService: recruitmentService,
		fileService:        fileService,
	}
}

// ListJobs handles GET /hr/recruitment
func (h *recruitmentHandlerImpl) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.recruitmentService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, map[string]interface{}{
		"jobs":               recruitment.NewJobOpeningResponses(jobs, h.fileService.FileURL),
		"candidate_statuses": recruitment.CandidateStatuses,
	})
}

// PostJob handles POST /hr/recruitment
func (h *recruitmentHandlerImpl) PostJob(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := recruitment.CreateJobOpeningRequest{
		Title:        r.PostFormValue("title"),
		Description:  r.PostFormValue("description"),
		Requirements: r.PostFormValue("requirements"),
		IsActive:     true,
	}
	if v, ok := r.PostForm["is_active"]; ok && len(v) > 0 {
		req.IsActive = validator.ParseBool(v[0])
	}

	if _, err := h.recruitmentService.PostJob(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.RedirectWithFlash(w, hrRecruitmentPath, response.FlashSuccess, "Job posted!")
}

// CloseJob handles POST /hr/recruitment/{id}/close
func (h *recruitmentHandlerImpl) CloseJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.recruitmentService.CloseJob(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Job opening closed", "job_id", job.ID, "by", principalFrom(r).ID)
	response.RedirectWithFlash(w, hrRecruitmentPath, response.FlashSuccess, "Job closed.")
}

// AddCandidate handles POST /hr/recruitment/{id}/candidates
func (h *recruitmentHandlerImpl) AddCandidate(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resume, header, err := formFile(r, "resume")
	if err != nil {
		response.BadRequest(w, "Invalid resume upload", nil)
		return
	}
	if resume != nil {
		defer resume.Close()
	}

	req := recruitment.AddCandidateRequest{
		JobID:        chi.URLParam(r, "id"),
		Name:         r.PostFormValue("name"),
		Email:        r.PostFormValue("email"),
		Resume:       resume,
		ResumeHeader: header,
	}

	if _, err := h.recruitmentService.AddCandidate(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.RedirectWithFlash(w, hrRecruitmentPath, response.FlashSuccess, "Candidate added!")
}

// UpdateCandidate handles POST /hr/recruitment/candidates/{id}
func (h *recruitmentHandlerImpl) UpdateCandidate(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := recruitment.UpdateCandidateRequest{
		ID:            chi.URLParam(r, "id"),
		Status:        r.PostFormValue("status"),
		InterviewDate: r.PostFormValue("interview_date"),
	}

	if _, err := h.recruitmentService.UpdateCandidate(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.RedirectWithFlash(w, hrRecruitmentPath, response.FlashSuccess, "Candidate updated!")
}
