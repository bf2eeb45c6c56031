package shift

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
	userRepo user.UserRepository
}

func NewShiftService(shiftRepository shift.ShiftRepository, userRepo user.UserRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		ShiftRepository: shiftRepository,
		userRepo:        userRepo,
	}
}

// List implements shift.ShiftService. It also returns the users a shift can
// be assigned to.
func (s *ShiftServiceImpl) List(ctx context.Context) ([]shift.Shift, []user.User, error) {
	var (
		shifts []shift.Shift
		users  []user.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		shifts, err = s.ShiftRepository.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list shifts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		users, err = s.userRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return shifts, users, nil
}

// Assign implements shift.ShiftService.
func (s *ShiftServiceImpl) Assign(ctx context.Context, req shift.AssignShiftRequest) (shift.Shift, error) {
	if err := req.Validate(); err != nil {
		return shift.Shift{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return shift.Shift{}, shift.ErrEmployeeNotFound
		}
		return shift.Shift{}, err
	}

	created, err := s.ShiftRepository.Create(ctx, shift.Shift{
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		StartTime:  req.Start,
		EndTime:    req.End,
		DayOfWeek:  req.Dow,
	})
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to assign shift: %w", err)
	}
	return created, nil
}
