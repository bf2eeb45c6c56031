package recruitment

import "context"

type RecruitmentService interface {
	List(ctx context.Context) ([]JobOpening, error)
	PostJob(ctx context.Context, req CreateJobOpeningRequest) (JobOpening, error)
	CloseJob(ctx context.Context, id string) (JobOpening, error)
	AddCandidate(ctx context.Context, req AddCandidateRequest) (Candidate, error)
	UpdateCandidate(ctx context.Context, req UpdateCandidateRequest) (Candidate, error)
}
