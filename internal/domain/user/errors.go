package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameExists    = errors.New("username already taken")
	ErrInvalidRole       = errors.New("invalid role")
	ErrCannotDeleteSelf  = errors.New("you cannot delete your own account")
	ErrInvalidProfilePic = errors.New("profile picture must be a jpg or png image")
)
