package announcement

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/announcement"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memAnnouncementRepo struct {
	items []announcement.Announcement
}

func (r *memAnnouncementRepo) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	a.ID = "a-1"
	r.items = append([]announcement.Announcement{a}, r.items...)
	return a, nil
}

func (r *memAnnouncementRepo) List(ctx context.Context) ([]announcement.Announcement, error) {
	return r.items, nil
}

func TestCreate_AuthorIsPrincipal(t *testing.T) {
	repo := &memAnnouncementRepo{}
	svc := NewAnnouncementService(repo)

	created, err := svc.Create(context.Background(), user.User{ID: "hr-1"}, announcement.CreateAnnouncementRequest{
		Title:   " Town hall ",
		Content: "Friday 3pm",
	})
	require.NoError(t, err)
	assert.Equal(t, "hr-1", created.AuthorID)
	assert.Equal(t, "Town hall", created.Title)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCreate_RequiresContent(t *testing.T) {
	repo := &memAnnouncementRepo{}
	_, err := NewAnnouncementService(repo).Create(context.Background(), user.User{ID: "hr-1"}, announcement.CreateAnnouncementRequest{Title: "Empty"})
	assert.ErrorContains(t, err, "content is required")
	assert.Empty(t, repo.items)
}
