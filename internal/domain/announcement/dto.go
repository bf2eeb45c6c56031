package announcement

import (
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
)

type CreateAnnouncementRequest struct {
	Title   string
	Content string
}

func (r *CreateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs.Add("title", "title is required")
	} else if len(r.Title) > 200 {
		errs.Add("title", "title must not exceed 200 characters")
	}
	if validator.IsEmpty(r.Content) {
		errs.Add("content", "content is required")
	}

	return errs.Err()
}

type AnnouncementResponse struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	CreatedAt  string  `json:"created_at"`
	AuthorID   string  `json:"author_id"`
	AuthorName *string `json:"author_name,omitempty"`
}

func NewAnnouncementResponses(items []Announcement) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(items))
	for _, a := range items {
		out = append(out, AnnouncementResponse{
			ID:         a.ID,
			Title:      a.Title,
			Content:    a.Content,
			CreatedAt:  a.CreatedAt.Format(time.RFC3339),
			AuthorID:   a.AuthorID,
			AuthorName: a.AuthorName,
		})
	}
	return out
}
