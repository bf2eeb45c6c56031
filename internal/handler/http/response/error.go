package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/performance"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountNotLinked):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrInvalidOAuthState):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, auth.ErrOAuthDisabled):
		NotFound(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidTransition):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidAction):
		BadRequest(w, "Invalid action", nil)

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrTaskNotFound):
		NotFound(w, "Task not found")

	// Recruitment domain errors
	case errors.Is(err, recruitment.ErrJobOpeningNotFound):
		NotFound(w, "Job opening not found")
	case errors.Is(err, recruitment.ErrCandidateNotFound):
		NotFound(w, "Candidate not found")
	case errors.Is(err, recruitment.ErrJobOpeningClosed):
		Conflict(w, err.Error())

	// Employee lookups from HR forms
	case errors.Is(err, shift.ErrEmployeeNotFound), errors.Is(err, performance.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Stored files
	case errors.Is(err, storage.ErrFileNotFound), errors.Is(err, storage.ErrInvalidPath):
		NotFound(w, "File not found")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
