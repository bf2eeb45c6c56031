package announcement

import "time"

// Announcement is immutable once created.
type Announcement struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
	AuthorID  string

	// DTO
	AuthorName *string
}
