package user

import "context"

type UserService interface {
	List(ctx context.Context) ([]User, error)
	ListEmployees(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, req CreateUserRequest) (User, error)
	Update(ctx context.Context, req UpdateUserRequest) (User, error)
	Delete(ctx context.Context, principal User, id string) (User, error)
	UpdateProfile(ctx context.Context, principal User, req UpdateProfileRequest) (User, error)
}
