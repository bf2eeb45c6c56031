package feedback

import "context"

type FeedbackRepository interface {
	Create(ctx context.Context, f Feedback) (Feedback, error)
	List(ctx context.Context) ([]Feedback, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Feedback, error)
}
