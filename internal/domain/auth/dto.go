package auth

import (
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs.Add("username", "username is required")
	} else if len(r.Username) > 150 {
		errs.Add("username", "username must not exceed 150 characters")
	}
	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	}

	return errs.Err()
}

type SessionTrackingRequest struct {
	UserAgent string
	IPAddress string
}

// Session is an issued session token and the principal it is bound to
type Session struct {
	Token     string
	ExpiresAt int64
	User      user.User
}

type SessionResponse struct {
	User      user.UserResponse  `json:"user"`
	Dashboard user.DashboardKind `json:"dashboard"`
	ExpiresAt int64              `json:"expires_at"`
}
