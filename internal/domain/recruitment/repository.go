package recruitment

import (
	"context"
	"time"
)

type JobOpeningRepository interface {
	Create(ctx context.Context, job JobOpening) (JobOpening, error)
	GetByID(ctx context.Context, id string) (JobOpening, error)
	// List returns all openings with their candidates attached.
	List(ctx context.Context) ([]JobOpening, error)
	Close(ctx context.Context, id string, closedOn time.Time) (JobOpening, error)
}

type CandidateRepository interface {
	Create(ctx context.Context, c Candidate) (Candidate, error)
	UpdateStatus(ctx context.Context, id string, status CandidateStatus, interviewDate *time.Time) (Candidate, error)
}
