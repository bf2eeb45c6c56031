package user

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Manages accounts and sees organisation-wide reports
	RoleHR       Role = "HR"       // HR manager
	RoleEmployee Role = "EMPLOYEE" // Regular employee
)

// Roles lists every assignable role.
var Roles = []Role{RoleAdmin, RoleHR, RoleEmployee}

// ParseRole converts user input into a Role. Matching is case-insensitive.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Roles {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

type User struct {
	ID             string
	Username       string
	PasswordHash   *string
	Email          string
	FirstName      string
	LastName       string
	Role           Role
	Department     *string
	Phone          *string
	ProfilePicture *string
	DateOfJoining  *time.Time
	IsSuperuser    bool
	DateJoined     time.Time
	UpdatedAt      time.Time
}

// FullName returns "First Last", falling back to the username.
func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}
