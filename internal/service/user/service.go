package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/ems-backend-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/ems-backend-go/internal/service/file"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
	fileService file.FileService
}

func NewUserService(userRepository user.UserRepository, fileService file.FileService) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
		fileService:    fileService,
	}
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.User, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListEmployees implements user.UserService.
func (s *UserServiceImpl) ListEmployees(ctx context.Context) ([]user.User, error) {
	users, err := s.UserRepository.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return users, nil
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, id string) (user.User, error) {
	if !validator.IsValidUUID(id) {
		return user.User{}, user.ErrUserNotFound
	}
	return s.UserRepository.GetByID(ctx, id)
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	if err := s.ensureUsernameFree(ctx, req.Username, ""); err != nil {
		return user.User{}, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return user.User{}, err
	}

	role, _ := user.ParseRole(req.Role)
	newUser := user.User{
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: &hash,
		Email:        strings.TrimSpace(req.Email),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Role:         role,
		Department:   optional(req.Department),
		Phone:        optional(req.Phone),
	}
	newUser.DateOfJoining = parseDate(req.DateOfJoining)

	created, err := s.UserRepository.Create(ctx, newUser)
	if err != nil {
		if postgresql.IsUniqueViolation(err) {
			return user.User{}, user.ErrUsernameExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	if req.ProfilePicture == nil || req.ProfilePictureHeader == nil {
		return created, nil
	}

	picture, err := s.uploadPicture(ctx, created.ID, req.ProfilePicture, req.ProfilePictureHeader.Filename)
	if err != nil {
		if delErr := s.UserRepository.Delete(ctx, created.ID); delErr != nil {
			slog.Error("failed to remove user after picture upload error", "user_id", created.ID, "error", delErr)
		}
		return user.User{}, err
	}

	created.ProfilePicture = &picture
	updated, err := s.UserRepository.Update(ctx, created)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to save profile picture: %w", err)
	}
	return updated, nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.User, error) {
	if !validator.IsValidUUID(req.ID) {
		return user.User{}, user.ErrUserNotFound
	}
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	existing, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.User{}, err
	}

	if err := s.ensureUsernameFree(ctx, req.Username, existing.ID); err != nil {
		return user.User{}, err
	}

	role, _ := user.ParseRole(req.Role)
	existing.Username = strings.TrimSpace(req.Username)
	existing.Email = strings.TrimSpace(req.Email)
	existing.FirstName = strings.TrimSpace(req.FirstName)
	existing.LastName = strings.TrimSpace(req.LastName)
	existing.Role = role
	existing.IsSuperuser = req.IsSuperuser
	existing.Department = optional(req.Department)
	existing.Phone = optional(req.Phone)
	existing.DateOfJoining = parseDate(req.DateOfJoining)

	if req.Password != "" {
		hash, err := hashPassword(req.Password)
		if err != nil {
			return user.User{}, err
		}
		existing.PasswordHash = &hash
	}

	oldPicture := existing.ProfilePicture
	if req.ProfilePicture != nil && req.ProfilePictureHeader != nil {
		picture, err := s.uploadPicture(ctx, existing.ID, req.ProfilePicture, req.ProfilePictureHeader.Filename)
		if err != nil {
			return user.User{}, err
		}
		existing.ProfilePicture = &picture
	}

	updated, err := s.UserRepository.Update(ctx, existing)
	if err != nil {
		s.discardUpload(ctx, oldPicture, existing.ProfilePicture)
		if postgresql.IsUniqueViolation(err) {
			return user.User{}, user.ErrUsernameExists
		}
		return user.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.replacedPicture(ctx, oldPicture, updated.ProfilePicture)
	return updated, nil
}

// Delete implements user.UserService. The stored profile picture is removed
// after the row; a storage failure is logged and does not fail the delete.
func (s *UserServiceImpl) Delete(ctx context.Context, principal user.User, id string) (user.User, error) {
	if principal.ID == id {
		return user.User{}, user.ErrCannotDeleteSelf
	}
	if !validator.IsValidUUID(id) {
		return user.User{}, user.ErrUserNotFound
	}

	target, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}

	if err := s.UserRepository.Delete(ctx, id); err != nil {
		return user.User{}, err
	}

	if target.ProfilePicture != nil && *target.ProfilePicture != "" {
		if err := s.fileService.DeleteFile(ctx, *target.ProfilePicture); err != nil {
			slog.Warn("failed to delete profile picture", "user_id", id, "path", *target.ProfilePicture, "error", err)
		}
	}

	return target, nil
}

// UpdateProfile implements user.UserService.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, principal user.User, req user.UpdateProfileRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	existing, err := s.UserRepository.GetByID(ctx, principal.ID)
	if err != nil {
		return user.User{}, err
	}

	existing.FirstName = strings.TrimSpace(req.FirstName)
	existing.LastName = strings.TrimSpace(req.LastName)
	existing.Email = strings.TrimSpace(req.Email)
	existing.Phone = optional(req.Phone)

	oldPicture := existing.ProfilePicture
	if req.ProfilePicture != nil && req.ProfilePictureHeader != nil {
		picture, err := s.uploadPicture(ctx, existing.ID, req.ProfilePicture, req.ProfilePictureHeader.Filename)
		if err != nil {
			return user.User{}, err
		}
		existing.ProfilePicture = &picture
	}

	updated, err := s.UserRepository.Update(ctx, existing)
	if err != nil {
		s.discardUpload(ctx, oldPicture, existing.ProfilePicture)
		return user.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	s.replacedPicture(ctx, oldPicture, updated.ProfilePicture)
	return updated, nil
}

func (s *UserServiceImpl) ensureUsernameFree(ctx context.Context, username string, selfID string) error {
	found, err := s.UserRepository.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check username: %w", err)
	}
	if found.ID != selfID {
		return user.ErrUsernameExists
	}
	return nil
}

func (s *UserServiceImpl) uploadPicture(ctx context.Context, userID string, src io.Reader, filename string) (string, error) {
	picture, err := s.fileService.UploadProfilePicture(ctx, userID, src, filename)
	if err != nil {
		if errors.Is(err, file.ErrInvalidFileType) {
			return "", validator.ValidationErrors{{Field: "profile_picture", Message: user.ErrInvalidProfilePic.Error()}}
		}
		return "", err
	}
	return picture, nil
}

func (s *UserServiceImpl) replacedPicture(ctx context.Context, old *string, current *string) {
	if old == nil || *old == "" || (current != nil && *current == *old) {
		return
	}
	if err := s.fileService.DeleteFile(ctx, *old); err != nil {
		slog.Warn("failed to delete previous profile picture", "path", *old, "error", err)
	}
}

// discardUpload removes a picture uploaded for a save that did not commit.
func (s *UserServiceImpl) discardUpload(ctx context.Context, old *string, uploaded *string) {
	if uploaded == nil || *uploaded == "" || (old != nil && *old == *uploaded) {
		return
	}
	if err := s.fileService.DeleteFile(ctx, *uploaded); err != nil {
		slog.Warn("failed to delete orphaned profile picture", "path", *uploaded, "error", err)
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func parseDate(s string) *time.Time {
	if d, ok := validator.IsValidDate(strings.TrimSpace(s)); ok {
		return &d
	}
	return nil
}
