package recruitment

import (
	"mime/multipart"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
)

type CreateJobOpeningRequest struct {
	Title        string
	Description  string
	Requirements string
	IsActive     bool
}

func (r *CreateJobOpeningRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs.Add("title", "title is required")
	} else if len(r.Title) > 200 {
		errs.Add("title", "title must not exceed 200 characters")
	}
	if validator.IsEmpty(r.Description) {
		errs.Add("description", "description is required")
	}
	if validator.IsEmpty(r.Requirements) {
		errs.Add("requirements", "requirements is required")
	}

	return errs.Err()
}

type AddCandidateRequest struct {
	JobID string
	Name  string
	Email string

	Resume       multipart.File        `json:"-"`
	ResumeHeader *multipart.FileHeader `json:"-"`
}

func (r *AddCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.JobID) {
		errs.Add("job_id", "job_id must be a valid UUID")
	}
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if len(r.Name) > 100 {
		errs.Add("name", "name must not exceed 100 characters")
	}
	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "invalid email format")
	}
	if r.Resume == nil || r.ResumeHeader == nil {
		errs.Add("resume", "resume is required")
	}

	return errs.Err()
}

type UpdateCandidateRequest struct {
	ID            string
	Status        string
	InterviewDate string

	// Set by Validate
	ParsedStatus    CandidateStatus `json:"-"`
	ParsedInterview *time.Time      `json:"-"`
}

func (r *UpdateCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs.Add("id", "id must be a valid UUID")
	}

	st, err := ParseCandidateStatus(r.Status)
	if err != nil {
		errs.Add("status", "status must be one of APPLIED, INTERVIEW_SCHEDULED, HIRED, REJECTED")
	}
	r.ParsedStatus = st

	r.ParsedInterview = nil
	if !validator.IsEmpty(r.InterviewDate) {
		t, ok := validator.IsValidDateTime(r.InterviewDate)
		if !ok {
			errs.Add("interview_date", "interview_date must be an ISO 8601 date-time")
		} else {
			r.ParsedInterview = &t
		}
	} else if st == CandidateInterviewScheduled {
		errs.Add("interview_date", "interview_date is required when scheduling an interview")
	}

	return errs.Err()
}

type CandidateResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Resume        string  `json:"resume"`
	Status        string  `json:"status"`
	InterviewDate *string `json:"interview_date"`
}

type JobOpeningResponse struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Requirements string              `json:"requirements"`
	PostedOn     string              `json:"posted_on"`
	ClosedOn     *string             `json:"closed_on"`
	IsActive     bool                `json:"is_active"`
	Candidates   []CandidateResponse `json:"candidates"`
}

// NewJobOpeningResponses builds view models; resumeURL maps a stored path
// to a link.
func NewJobOpeningResponses(jobs []JobOpening, resumeURL func(string) string) []JobOpeningResponse {
	out := make([]JobOpeningResponse, 0, len(jobs))
	for _, j := range jobs {
		resp := JobOpeningResponse{
			ID:           j.ID,
			Title:        j.Title,
			Description:  j.Description,
			Requirements: j.Requirements,
			PostedOn:     j.PostedOn.Format("2006-01-02"),
			IsActive:     j.IsActive,
			Candidates:   make([]CandidateResponse, 0, len(j.Candidates)),
		}
		if j.ClosedOn != nil {
			c := j.ClosedOn.Format("2006-01-02")
			resp.ClosedOn = &c
		}
		for _, c := range j.Candidates {
			cr := CandidateResponse{
				ID:     c.ID,
				Name:   c.Name,
				Email:  c.Email,
				Resume: resumeURL(c.Resume),
				Status: string(c.Status),
			}
			if c.InterviewDate != nil {
				s := c.InterviewDate.Format(time.RFC3339)
				cr.InterviewDate = &s
			}
			resp.Candidates = append(resp.Candidates, cr)
		}
		out = append(out, resp)
	}
	return out
}
