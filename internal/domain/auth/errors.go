package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrAccountNotLinked   = errors.New("no account is registered for this Google email")
	ErrEmailNotVerified   = errors.New("Google email is not verified")
	ErrOAuthDisabled      = errors.New("Google sign-in is not configured")
	ErrInvalidOAuthState  = errors.New("invalid OAuth state")
)
