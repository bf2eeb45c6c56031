package announcement

import "context"

type AnnouncementRepository interface {
	Create(ctx context.Context, a Announcement) (Announcement, error)
	// List returns announcements newest first.
	List(ctx context.Context) ([]Announcement, error)
}
