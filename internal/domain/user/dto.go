package user

import (
	"mime/multipart"
	"strings"

	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in views
type UserResponse struct {
	ID             string  `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	FullName       string  `json:"full_name"`
	Role           string  `json:"role"`
	Department     *string `json:"department,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
	DateOfJoining  *string `json:"date_of_joining,omitempty"`
	IsSuperuser    bool    `json:"is_superuser"`
	IsAdmin        bool    `json:"is_admin"`
	DateJoined     string  `json:"date_joined"`
}

// NewUserResponse converts an entity into its view model. Password hashes never leave the domain.
func NewUserResponse(u User) UserResponse {
	resp := UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		FullName:       u.FullName(),
		Role:           string(u.Role),
		Department:     u.Department,
		Phone:          u.Phone,
		ProfilePicture: u.ProfilePicture,
		IsSuperuser:    u.IsSuperuser,
		IsAdmin:        IsAdmin(u),
		DateJoined:     u.DateJoined.Format("2006-01-02T15:04:05Z07:00"),
	}
	if u.DateOfJoining != nil {
		d := u.DateOfJoining.Format("2006-01-02")
		resp.DateOfJoining = &d
	}
	return resp
}

// NewUserResponses converts a list of users.
func NewUserResponses(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// CreateUserRequest is the admin "add user" form
type CreateUserRequest struct {
	Username      string
	Email         string
	Password      string
	FirstName     string
	LastName      string
	Role          string
	Department    string
	Phone         string
	DateOfJoining string

	ProfilePicture       multipart.File        `json:"-"`
	ProfilePictureHeader *multipart.FileHeader `json:"-"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	validateUsername(&errs, r.Username)
	validateEmail(&errs, r.Email, false)

	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	} else {
		validatePassword(&errs, r.Password)
	}

	validateProfileFields(&errs, r.FirstName, r.LastName, r.Department, r.Phone, r.DateOfJoining)

	if validator.IsEmpty(r.Role) {
		errs.Add("role", "role is required")
	} else if _, err := ParseRole(r.Role); err != nil {
		errs.Add("role", "invalid role")
	}

	return errs.Err()
}

// UpdateUserRequest is the admin "edit user" form. An empty password keeps the current one.
type UpdateUserRequest struct {
	ID          string
	IsSuperuser bool
	CreateUserRequest
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs.Add("id", "id must be a valid UUID")
	}

	validateUsername(&errs, r.Username)
	validateEmail(&errs, r.Email, false)

	if !validator.IsEmpty(r.Password) {
		validatePassword(&errs, r.Password)
	}

	validateProfileFields(&errs, r.FirstName, r.LastName, r.Department, r.Phone, r.DateOfJoining)

	if validator.IsEmpty(r.Role) {
		errs.Add("role", "role is required")
	} else if _, err := ParseRole(r.Role); err != nil {
		errs.Add("role", "invalid role")
	}

	return errs.Err()
}

// UpdateProfileRequest is the self-service subset a user may change about themself
type UpdateProfileRequest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string

	ProfilePicture       multipart.File        `json:"-"`
	ProfilePictureHeader *multipart.FileHeader `json:"-"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	validateEmail(&errs, r.Email, true)
	validateProfileFields(&errs, r.FirstName, r.LastName, "", r.Phone, "")

	return errs.Err()
}

func validateUsername(errs *validator.ValidationErrors, username string) {
	if validator.IsEmpty(username) {
		errs.Add("username", "username is required")
	} else if !validator.IsValidUsername(username) {
		errs.Add("username", "username must be 3-150 characters: letters, digits and @/./+/-/_ only")
	}
}

func validateEmail(errs *validator.ValidationErrors, email string, required bool) {
	if validator.IsEmpty(email) {
		if required {
			errs.Add("email", "email is required")
		}
		return
	}
	if len(email) > 254 {
		errs.Add("email", "email must not exceed 254 characters")
	} else if !validator.IsValidEmail(email) {
		errs.Add("email", "invalid email format")
	}
}

func validatePassword(errs *validator.ValidationErrors, password string) {
	if len(password) < 8 {
		errs.Add("password", "password must be at least 8 characters")
	} else if len(password) > 72 {
		errs.Add("password", "password must not exceed 72 characters")
	}
}

func validateProfileFields(errs *validator.ValidationErrors, firstName, lastName, department, phone, dateOfJoining string) {
	if len(firstName) > 150 {
		errs.Add("first_name", "first_name must not exceed 150 characters")
	}
	if len(lastName) > 150 {
		errs.Add("last_name", "last_name must not exceed 150 characters")
	}
	if len(department) > 50 {
		errs.Add("department", "department must not exceed 50 characters")
	}
	if !validator.IsEmpty(phone) {
		if len(strings.TrimSpace(phone)) > 15 || !validator.IsValidPhoneNumber(phone) {
			errs.Add("phone", "invalid phone number")
		}
	}
	if !validator.IsEmpty(dateOfJoining) {
		if _, ok := validator.IsValidDate(dateOfJoining); !ok {
			errs.Add("date_of_joining", "date_of_joining must be in YYYY-MM-DD format")
		}
	}
}
