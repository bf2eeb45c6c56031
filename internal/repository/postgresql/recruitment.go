package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type jobOpeningRepositoryImpl struct {
	db *database.DB
}

func NewJobOpeningRepository(db *database.DB) recruitment.JobOpeningRepository {
	return &jobOpeningRepositoryImpl{db: db}
}

const jobOpeningColumns = `id, title, description, requirements, posted_on, closed_on, is_active`

func scanJobOpening(row rowScanner) (recruitment.JobOpening, error) {
	var j recruitment.JobOpening
	err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Requirements, &j.PostedOn, &j.ClosedOn, &j.IsActive)
	return j, err
}

// Create implements recruitment.JobOpeningRepository.
func (r *jobOpeningRepositoryImpl) Create(ctx context.Context, job recruitment.JobOpening) (recruitment.JobOpening, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_openings (title, description, requirements, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + jobOpeningColumns

	return scanJobOpening(q.QueryRow(ctx, query, job.Title, job.Description, job.Requirements, job.IsActive))
}

// GetByID implements recruitment.JobOpeningRepository.
func (r *jobOpeningRepositoryImpl) GetByID(ctx context.Context, id string) (recruitment.JobOpening, error) {
	q := GetQuerier(ctx, r.db)

	j, err := scanJobOpening(q.QueryRow(ctx, `SELECT `+jobOpeningColumns+` FROM job_openings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.JobOpening{}, recruitment.ErrJobOpeningNotFound
		}
		return recruitment.JobOpening{}, err
	}
	return j, nil
}

// List implements recruitment.JobOpeningRepository.
func (r *jobOpeningRepositoryImpl) List(ctx context.Context) ([]recruitment.JobOpening, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+jobOpeningColumns+` FROM job_openings ORDER BY is_active DESC, posted_on DESC, title`)
	if err != nil {
		return nil, err
	}

	jobs := []recruitment.JobOpening{}
	index := map[string]int{}
	for rows.Next() {
		j, err := scanJobOpening(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		j.Candidates = []recruitment.Candidate{}
		index[j.ID] = len(jobs)
		jobs = append(jobs, j)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(jobs) == 0 {
		return jobs, nil
	}

	rows, err = q.Query(ctx, `SELECT `+candidateColumns+` FROM candidates ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		if i, ok := index[c.JobID]; ok {
			jobs[i].Candidates = append(jobs[i].Candidates, c)
		}
	}
	return jobs, rows.Err()
}

// Close implements recruitment.JobOpeningRepository. Closing twice keeps the first closed_on.
func (r *jobOpeningRepositoryImpl) Close(ctx context.Context, id string, closedOn time.Time) (recruitment.JobOpening, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_openings
		SET is_active = FALSE, closed_on = COALESCE(closed_on, $1)
		WHERE id = $2
		RETURNING ` + jobOpeningColumns

	j, err := scanJobOpening(q.QueryRow(ctx, query, closedOn, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.JobOpening{}, recruitment.ErrJobOpeningNotFound
		}
		return recruitment.JobOpening{}, err
	}
	return j, nil
}

type candidateRepositoryImpl struct {
	db *database.DB
}

func NewCandidateRepository(db *database.DB) recruitment.CandidateRepository {
	return &candidateRepositoryImpl{db: db}
}

const candidateColumns = `id, job_id, name, email, resume, status, interview_date, created_at`

func scanCandidate(row rowScanner) (recruitment.Candidate, error) {
	var c recruitment.Candidate
	err := row.Scan(&c.ID, &c.JobID, &c.Name, &c.Email, &c.Resume, &c.Status, &c.InterviewDate, &c.CreatedAt)
	return c, err
}

// Create implements recruitment.CandidateRepository.
func (r *candidateRepositoryImpl) Create(ctx context.Context, c recruitment.Candidate) (recruitment.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO candidates (job_id, name, email, resume, status)
		VALUES ($1, $2, $3, $4, 'APPLIED')
		RETURNING ` + candidateColumns

	created, err := scanCandidate(q.QueryRow(ctx, query, c.JobID, c.Name, c.Email, c.Resume))
	if err != nil {
		if IsForeignKeyViolation(err) {
			return recruitment.Candidate{}, recruitment.ErrJobOpeningNotFound
		}
		return recruitment.Candidate{}, err
	}
	return created, nil
}

// UpdateStatus implements recruitment.CandidateRepository.
func (r *candidateRepositoryImpl) UpdateStatus(ctx context.Context, id string, status recruitment.CandidateStatus, interviewDate *time.Time) (recruitment.Candidate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE candidates
		SET status = $1, interview_date = COALESCE($2, interview_date)
		WHERE id = $3
		RETURNING ` + candidateColumns

	c, err := scanCandidate(q.QueryRow(ctx, query, status, interviewDate, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.Candidate{}, recruitment.ErrCandidateNotFound
		}
		return recruitment.Candidate{}, err
	}
	return c, nil
}
