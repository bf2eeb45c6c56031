package recruitment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/ems-backend-go/internal/service/file"
)

type RecruitmentServiceImpl struct {
	jobRepo       recruitment.JobOpeningRepository
	candidateRepo recruitment.CandidateRepository
	fileService   file.FileService
	now           func() time.Time
}

func NewRecruitmentService(jobRepo recruitment.JobOpeningRepository, candidateRepo recruitment.CandidateRepository, fileService file.FileService) recruitment.RecruitmentService {
	return &RecruitmentServiceImpl{
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		fileService:   fileService,
		now:           time.Now,
	}
}

// List implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) List(ctx context.Context) ([]recruitment.JobOpening, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list job openings: %w", err)
	}
	return jobs, nil
}

// PostJob implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) PostJob(ctx context.Context, req recruitment.CreateJobOpeningRequest) (recruitment.JobOpening, error) {
	if err := req.Validate(); err != nil {
		return recruitment.JobOpening{}, err
	}

	created, err := s.jobRepo.Create(ctx, recruitment.JobOpening{
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		Requirements: strings.TrimSpace(req.Requirements),
		IsActive:     req.IsActive,
	})
	if err != nil {
		return recruitment.JobOpening{}, fmt.Errorf("failed to post job opening: %w", err)
	}
	return created, nil
}

// CloseJob implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) CloseJob(ctx context.Context, id string) (recruitment.JobOpening, error) {
	if !validator.IsValidUUID(id) {
		return recruitment.JobOpening{}, recruitment.ErrJobOpeningNotFound
	}
	return s.jobRepo.Close(ctx, id, s.now())
}

// AddCandidate implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) AddCandidate(ctx context.Context, req recruitment.AddCandidateRequest) (recruitment.Candidate, error) {
	if !validator.IsValidUUID(req.JobID) {
		return recruitment.Candidate{}, recruitment.ErrJobOpeningNotFound
	}
	if err := req.Validate(); err != nil {
		return recruitment.Candidate{}, err
	}

	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return recruitment.Candidate{}, err
	}
	if !job.IsActive {
		return recruitment.Candidate{}, recruitment.ErrJobOpeningClosed
	}

	resume, err := s.fileService.UploadResume(ctx, job.ID, req.Resume, req.ResumeHeader.Filename)
	if err != nil {
		if errors.Is(err, file.ErrInvalidFileType) {
			return recruitment.Candidate{}, validator.ValidationErrors{{Field: "resume", Message: recruitment.ErrInvalidResumeType.Error()}}
		}
		return recruitment.Candidate{}, err
	}

	created, err := s.candidateRepo.Create(ctx, recruitment.Candidate{
		JobID:  job.ID,
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.TrimSpace(req.Email),
		Resume: resume,
	})
	if err != nil {
		if delErr := s.fileService.DeleteFile(ctx, resume); delErr != nil {
			slog.Warn("failed to remove orphaned resume", "path", resume, "error", delErr)
		}
		return recruitment.Candidate{}, fmt.Errorf("failed to add candidate: %w", err)
	}
	return created, nil
}

// UpdateCandidate implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) UpdateCandidate(ctx context.Context, req recruitment.UpdateCandidateRequest) (recruitment.Candidate, error) {
	if !validator.IsValidUUID(req.ID) {
		return recruitment.Candidate{}, recruitment.ErrCandidateNotFound
	}
	if err := req.Validate(); err != nil {
		return recruitment.Candidate{}, err
	}
	return s.candidateRepo.UpdateStatus(ctx, req.ID, req.ParsedStatus, req.ParsedInterview)
}
