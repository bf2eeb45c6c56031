package feedback

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

type FeedbackService interface {
	Submit(ctx context.Context, principal user.User, req SubmitFeedbackRequest) (Feedback, error)
	List(ctx context.Context) ([]Feedback, error)
	Mine(ctx context.Context, principal user.User) ([]Feedback, error)
}
