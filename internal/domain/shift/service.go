package shift

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

type ShiftService interface {
	List(ctx context.Context) ([]Shift, []user.User, error)
	Assign(ctx context.Context, req AssignShiftRequest) (Shift, error)
}
