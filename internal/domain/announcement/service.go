package announcement

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

type AnnouncementService interface {
	List(ctx context.Context) ([]Announcement, error)
	Create(ctx context.Context, author user.User, req CreateAnnouncementRequest) (Announcement, error)
}
