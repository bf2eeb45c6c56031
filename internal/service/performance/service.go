package performance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/performance"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

type PerformanceServiceImpl struct {
	performance.ReviewRepository
}

func NewPerformanceService(reviewRepository performance.ReviewRepository) performance.PerformanceService {
	return &PerformanceServiceImpl{ReviewRepository: reviewRepository}
}

// Create implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Create(ctx context.Context, reviewer user.User, req performance.CreateReviewRequest) (performance.Review, error) {
	if err := req.Validate(); err != nil {
		return performance.Review{}, err
	}

	created, err := s.ReviewRepository.Create(ctx, performance.Review{
		EmployeeID:        req.EmployeeID,
		ReviewerID:        reviewer.ID,
		Rating:            req.ParsedRating,
		Comments:          strings.TrimSpace(req.Comments),
		ProductivityScore: req.ParsedProductivity,
		AttendanceScore:   req.ParsedAttendance,
	})
	if err != nil {
		if errors.Is(err, performance.ErrEmployeeNotFound) {
			return performance.Review{}, err
		}
		return performance.Review{}, fmt.Errorf("failed to create review: %w", err)
	}
	return created, nil
}

// List implements performance.PerformanceService.
func (s *PerformanceServiceImpl) List(ctx context.Context) ([]performance.Review, error) {
	reviews, err := s.ReviewRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// Mine implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Mine(ctx context.Context, principal user.User) ([]performance.Review, error) {
	reviews, err := s.ReviewRepository.ListByEmployee(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
