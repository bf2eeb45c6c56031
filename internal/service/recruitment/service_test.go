package recruitment

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/ems-backend-go/internal/service/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	openJobID   = "60000000-0000-0000-0000-000000000001"
	closedJobID = "60000000-0000-0000-0000-000000000002"
	candidateID = "70000000-0000-0000-0000-000000000001"
)

type memJobRepo struct {
	jobs map[string]recruitment.JobOpening
}

func (r *memJobRepo) Create(ctx context.Context, job recruitment.JobOpening) (recruitment.JobOpening, error) {
	job.ID = openJobID
	r.jobs[job.ID] = job
	return job, nil
}

func (r *memJobRepo) GetByID(ctx context.Context, id string) (recruitment.JobOpening, error) {
	j, ok := r.jobs[id]
	if !ok {
		return recruitment.JobOpening{}, recruitment.ErrJobOpeningNotFound
	}
	return j, nil
}

func (r *memJobRepo) List(ctx context.Context) ([]recruitment.JobOpening, error) {
	out := []recruitment.JobOpening{}
	for _, j := range r.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (r *memJobRepo) Close(ctx context.Context, id string, closedOn time.Time) (recruitment.JobOpening, error) {
	j, ok := r.jobs[id]
	if !ok {
		return recruitment.JobOpening{}, recruitment.ErrJobOpeningNotFound
	}
	j.IsActive = false
	if j.ClosedOn == nil {
		j.ClosedOn = &closedOn
	}
	r.jobs[id] = j
	return j, nil
}

type memCandidateRepo struct {
	candidates map[string]recruitment.Candidate
	createErr  error
}

func (r *memCandidateRepo) Create(ctx context.Context, c recruitment.Candidate) (recruitment.Candidate, error) {
	if r.createErr != nil {
		return recruitment.Candidate{}, r.createErr
	}
	c.ID = candidateID
	c.Status = recruitment.CandidateApplied
	r.candidates[c.ID] = c
	return c, nil
}

func (r *memCandidateRepo) UpdateStatus(ctx context.Context, id string, status recruitment.CandidateStatus, interviewDate *time.Time) (recruitment.Candidate, error) {
	c, ok := r.candidates[id]
	if !ok {
		return recruitment.Candidate{}, recruitment.ErrCandidateNotFound
	}
	c.Status = status
	if interviewDate != nil {
		c.InterviewDate = interviewDate
	}
	r.candidates[id] = c
	return c, nil
}

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func upload(name string) (multipart.File, *multipart.FileHeader) {
	return memFile{bytes.NewReader([]byte("%PDF-1.4 resume"))}, &multipart.FileHeader{Filename: name}
}

func newTestService(t *testing.T) (*RecruitmentServiceImpl, *memJobRepo, *memCandidateRepo, *storage.LocalStorage) {
	t.Helper()
	return newTestServiceIn(t, t.TempDir())
}

func newTestServiceIn(t *testing.T, dir string) (*RecruitmentServiceImpl, *memJobRepo, *memCandidateRepo, *storage.LocalStorage) {
	t.Helper()
	store, err := storage.NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	jobs := &memJobRepo{jobs: map[string]recruitment.JobOpening{
		openJobID:   {ID: openJobID, Title: "Backend Engineer", IsActive: true},
		closedJobID: {ID: closedJobID, Title: "Designer", IsActive: false},
	}}
	candidates := &memCandidateRepo{candidates: map[string]recruitment.Candidate{}}

	svc := NewRecruitmentService(jobs, candidates, file.NewFileService(store)).(*RecruitmentServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC) }
	return svc, jobs, candidates, store
}

func TestAddCandidate_StoresResume(t *testing.T) {
	svc, _, _, store := newTestService(t)
	ctx := context.Background()

	resume, header := upload("cv.pdf")
	created, err := svc.AddCandidate(ctx, recruitment.AddCandidateRequest{
		JobID: openJobID, Name: "Dana", Email: "dana@example.com", Resume: resume, ResumeHeader: header,
	})
	require.NoError(t, err)
	assert.Equal(t, recruitment.CandidateApplied, created.Status)
	assert.Contains(t, created.Resume, "resumes/"+openJobID+"/")

	exists, err := store.Exists(ctx, created.Resume)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAddCandidate_Rejections(t *testing.T) {
	svc, _, candidates, _ := newTestService(t)
	ctx := context.Background()

	resume, header := upload("cv.pdf")
	_, err := svc.AddCandidate(ctx, recruitment.AddCandidateRequest{
		JobID: closedJobID, Name: "Eve", Email: "eve@example.com", Resume: resume, ResumeHeader: header,
	})
	assert.ErrorIs(t, err, recruitment.ErrJobOpeningClosed)

	exe, exeHeader := upload("cv.exe")
	_, err = svc.AddCandidate(ctx, recruitment.AddCandidateRequest{
		JobID: openJobID, Name: "Eve", Email: "eve@example.com", Resume: exe, ResumeHeader: exeHeader,
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, recruitment.ErrInvalidResumeType.Error(), verrs.ToMap()["resume"])
	assert.Empty(t, candidates.candidates)
}

func TestAddCandidate_CleansUpOnStoreFailure(t *testing.T) {
	dir := t.TempDir()
	svc, _, candidates, _ := newTestServiceIn(t, dir)
	candidates.createErr = errors.New("insert failed")

	resume, header := upload("cv.docx")
	_, err := svc.AddCandidate(context.Background(), recruitment.AddCandidateRequest{
		JobID: openJobID, Name: "Finn", Email: "finn@example.com", Resume: resume, ResumeHeader: header,
	})
	assert.ErrorContains(t, err, "insert failed")

	entries, err := os.ReadDir(filepath.Join(dir, "resumes", openJobID))
	if err == nil {
		assert.Empty(t, entries)
	}
}

func TestCloseJob(t *testing.T) {
	svc, jobs, _, _ := newTestService(t)

	closed, err := svc.CloseJob(context.Background(), openJobID)
	require.NoError(t, err)
	assert.False(t, closed.IsActive)
	require.NotNil(t, closed.ClosedOn)
	assert.Equal(t, 2024, closed.ClosedOn.Year())
	assert.False(t, jobs.jobs[openJobID].IsActive)

	_, err = svc.CloseJob(context.Background(), "nope")
	assert.ErrorIs(t, err, recruitment.ErrJobOpeningNotFound)
}

func TestUpdateCandidate_InterviewNeedsDate(t *testing.T) {
	svc, _, candidates, _ := newTestService(t)
	candidates.candidates[candidateID] = recruitment.Candidate{ID: candidateID, Status: recruitment.CandidateApplied}

	_, err := svc.UpdateCandidate(context.Background(), recruitment.UpdateCandidateRequest{
		ID: candidateID, Status: "INTERVIEW_SCHEDULED",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "interview_date")

	updated, err := svc.UpdateCandidate(context.Background(), recruitment.UpdateCandidateRequest{
		ID: candidateID, Status: "interview_scheduled", InterviewDate: "2024-07-10T09:30:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, recruitment.CandidateInterviewScheduled, updated.Status)
	require.NotNil(t, updated.InterviewDate)
	assert.Equal(t, 9, updated.InterviewDate.Hour())
}
