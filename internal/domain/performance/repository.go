package performance

import "context"

type ReviewRepository interface {
	Create(ctx context.Context, r Review) (Review, error)
	// ListByEmployee returns the employee's reviews newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Review, error)
	List(ctx context.Context) ([]Review, error)
}
