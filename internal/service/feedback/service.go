package feedback

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/feedback"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

type FeedbackServiceImpl struct {
	feedback.FeedbackRepository
}

func NewFeedbackService(feedbackRepository feedback.FeedbackRepository) feedback.FeedbackService {
	return &FeedbackServiceImpl{FeedbackRepository: feedbackRepository}
}

// Submit implements feedback.FeedbackService.
func (s *FeedbackServiceImpl) Submit(ctx context.Context, principal user.User, req feedback.SubmitFeedbackRequest) (feedback.Feedback, error) {
	if err := req.Validate(); err != nil {
		return feedback.Feedback{}, err
	}

	item := feedback.Feedback{
		EmployeeID: principal.ID,
		Comment:    strings.TrimSpace(req.Comment),
	}
	if subject := strings.TrimSpace(req.Subject); subject != "" {
		item.Subject = &subject
	}

	created, err := s.FeedbackRepository.Create(ctx, item)
	if err != nil {
		return feedback.Feedback{}, fmt.Errorf("failed to submit feedback: %w", err)
	}
	return created, nil
}

// List implements feedback.FeedbackService.
func (s *FeedbackServiceImpl) List(ctx context.Context) ([]feedback.Feedback, error) {
	items, err := s.FeedbackRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return items, nil
}

// Mine implements feedback.FeedbackService.
func (s *FeedbackServiceImpl) Mine(ctx context.Context, principal user.User) ([]feedback.Feedback, error) {
	items, err := s.FeedbackRepository.ListByEmployee(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return items, nil
}
