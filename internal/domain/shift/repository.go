package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
}
