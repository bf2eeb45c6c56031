package announcement

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/announcement"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

type AnnouncementServiceImpl struct {
	announcement.AnnouncementRepository
}

func NewAnnouncementService(announcementRepository announcement.AnnouncementRepository) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{AnnouncementRepository: announcementRepository}
}

// List implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) List(ctx context.Context) ([]announcement.Announcement, error) {
	items, err := s.AnnouncementRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return items, nil
}

// Create implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, author user.User, req announcement.CreateAnnouncementRequest) (announcement.Announcement, error) {
	if err := req.Validate(); err != nil {
		return announcement.Announcement{}, err
	}

	created, err := s.AnnouncementRepository.Create(ctx, announcement.Announcement{
		Title:    strings.TrimSpace(req.Title),
		Content:  strings.TrimSpace(req.Content),
		AuthorID: author.ID,
	})
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}
	return created, nil
}
