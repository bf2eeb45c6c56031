package project

import "errors"

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidStatus     = errors.New("invalid project status")
	ErrInvalidTaskStatus = errors.New("invalid task status")
	ErrUnknownMember     = errors.New("one or more team members do not exist")
)
