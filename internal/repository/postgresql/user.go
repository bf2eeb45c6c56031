package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, password_hash, email, first_name, last_name, role,
	department, phone, profile_picture, date_of_joining, is_superuser, date_joined, updated_at`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row rowScanner) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.Role,
		&u.Department,
		&u.Phone,
		&u.ProfilePicture,
		&u.DateOfJoining,
		&u.IsSuperuser,
		&u.DateJoined,
		&u.UpdatedAt,
	)
	return u, err
}

func (r *userRepositoryImpl) getOne(ctx context.Context, where string, arg any) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where
	found, err := scanUser(q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return found, nil
}

func (r *userRepositoryImpl) listWhere(ctx context.Context, where string, args ...any) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users ` + where + ` ORDER BY date_joined DESC, username`
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			username, password_hash, email, first_name, last_name, role,
			department, phone, profile_picture, date_of_joining, is_superuser
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		newUser.Username,
		newUser.PasswordHash,
		newUser.Email,
		newUser.FirstName,
		newUser.LastName,
		newUser.Role,
		newUser.Department,
		newUser.Phone,
		newUser.ProfilePicture,
		newUser.DateOfJoining,
		newUser.IsSuperuser,
	))
	if err != nil {
		return user.User{}, err
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return r.getOne(ctx, "username = $1", username)
}

// GetByEmail implements user.UserRepository. Matching is case-insensitive
// and the oldest account wins when several share an address.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getOne(ctx, "email <> '' AND LOWER(email) = LOWER($1) ORDER BY date_joined LIMIT 1", email)
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	return r.listWhere(ctx, "")
}

// ListByRole implements user.UserRepository.
func (r *userRepositoryImpl) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	return r.listWhere(ctx, "WHERE role = $1", role)
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET username = $1, password_hash = $2, email = $3, first_name = $4, last_name = $5,
			role = $6, department = $7, phone = $8, profile_picture = $9, date_of_joining = $10,
			is_superuser = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING ` + userColumns

	updated, err := scanUser(q.QueryRow(ctx, query,
		u.Username,
		u.PasswordHash,
		u.Email,
		u.FirstName,
		u.LastName,
		u.Role,
		u.Department,
		u.Phone,
		u.ProfilePicture,
		u.DateOfJoining,
		u.IsSuperuser,
		u.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return updated, nil
}

// Delete implements user.UserRepository. Owned rows go with it through ON DELETE CASCADE.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
