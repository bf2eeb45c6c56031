package recruitment

import (
	"fmt"
	"strings"
	"time"
)

type JobOpening struct {
	ID           string
	Title        string
	Description  string
	Requirements string
	PostedOn     time.Time
	ClosedOn     *time.Time
	IsActive     bool

	Candidates []Candidate
}

type CandidateStatus string

const (
	CandidateApplied            CandidateStatus = "APPLIED"
	CandidateInterviewScheduled CandidateStatus = "INTERVIEW_SCHEDULED"
	CandidateHired              CandidateStatus = "HIRED"
	CandidateRejected           CandidateStatus = "REJECTED"
)

var CandidateStatuses = []CandidateStatus{CandidateApplied, CandidateInterviewScheduled, CandidateHired, CandidateRejected}

func ParseCandidateStatus(s string) (CandidateStatus, error) {
	switch st := CandidateStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case CandidateApplied, CandidateInterviewScheduled, CandidateHired, CandidateRejected:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCandidateStatus, s)
}

type Candidate struct {
	ID            string
	JobID         string
	Name          string
	Email         string
	Resume        string // storage path
	Status        CandidateStatus
	InterviewDate *time.Time
	CreatedAt     time.Time
}
