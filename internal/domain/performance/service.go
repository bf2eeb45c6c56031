package performance

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

type PerformanceService interface {
	Create(ctx context.Context, reviewer user.User, req CreateReviewRequest) (Review, error)
	List(ctx context.Context) ([]Review, error)
	Mine(ctx context.Context, principal user.User) ([]Review, error)
}
