package recruitment

import "errors"

var (
	ErrJobOpeningNotFound     = errors.New("job opening not found")
	ErrJobOpeningClosed       = errors.New("job opening is closed")
	ErrCandidateNotFound      = errors.New("candidate not found")
	ErrInvalidCandidateStatus = errors.New("invalid candidate status")
	ErrInvalidResumeType      = errors.New("resume must be a pdf, doc or docx file")
)
