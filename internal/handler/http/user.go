package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const manageUsersPath = "/manage-users"

type UserHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	AddUserForm(w http.ResponseWriter, r *http.Request)
	AddUser(w http.ResponseWriter, r *http.Request)
	EditUserForm(w http.ResponseWriter, r *http.Request)
	EditUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{userService: userService}
}

type userFormView struct {
	Roles []user.Role        `json:"roles"`
	User  *user.UserResponse `json:"user,omitempty"`
}

// ListUsers implements UserHandler.
func (h *userHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, map[string]interface{}{
		"users": user.NewUserResponses(users),
	})
}

// AddUserForm implements UserHandler.
func (h *userHandlerImpl) AddUserForm(w http.ResponseWriter, r *http.Request) {
	response.View(w, r, userFormView{Roles: user.Roles})
}

// AddUser implements UserHandler.
func (h *userHandlerImpl) AddUser(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		slog.Error("AddUser parse error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req, err := userFormFrom(r)
	if err != nil {
		response.BadRequest(w, "Invalid profile picture upload", nil)
		return
	}
	if req.ProfilePicture != nil {
		defer req.ProfilePicture.Close()
	}

	created, err := h.userService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("User created", "user_id", created.ID, "role", created.Role, "by", principalFrom(r).ID)
	response.RedirectWithFlash(w, manageUsersPath, response.FlashSuccess, "Employee added successfully!")
}

// EditUserForm implements UserHandler.
func (h *userHandlerImpl) EditUserForm(w http.ResponseWriter, r *http.Request) {
	target, err := h.userService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := user.NewUserResponse(target)
	response.View(w, r, userFormView{Roles: user.Roles, User: &resp})
}

// EditUser implements UserHandler.
func (h *userHandlerImpl) EditUser(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		slog.Error("EditUser parse error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	form, err := userFormFrom(r)
	if err != nil {
		response.BadRequest(w, "Invalid profile picture upload", nil)
		return
	}
	if form.ProfilePicture != nil {
		defer form.ProfilePicture.Close()
	}

	updated, err := h.userService.Update(r.Context(), user.UpdateUserRequest{
		ID:                chi.URLParam(r, "id"),
		IsSuperuser:       formCheckbox(r, "is_superuser"),
		CreateUserRequest: form,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.RedirectWithFlash(w, manageUsersPath, response.FlashSuccess, fmt.Sprintf("User %s updated!", updated.Username))
}

// DeleteUser implements UserHandler.
func (h *userHandlerImpl) DeleteUser(w http.ResponseWriter, r *http.Request) {
	principal := principalFrom(r)

	deleted, err := h.userService.Delete(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, user.ErrCannotDeleteSelf) {
			response.RedirectWithFlash(w, manageUsersPath, response.FlashError, err.Error())
			return
		}
		response.HandleError(w, err)
		return
	}

	slog.Info("User deleted", "user_id", deleted.ID, "by", principal.ID)
	response.RedirectWithFlash(w, manageUsersPath, response.FlashSuccess, "User deleted!")
}

func userFormFrom(r *http.Request) (user.CreateUserRequest, error) {
	req := user.CreateUserRequest{
		Username:      r.PostFormValue("username"),
		Email:         r.PostFormValue("email"),
		Password:      r.PostFormValue("password"),
		FirstName:     r.PostFormValue("first_name"),
		LastName:      r.PostFormValue("last_name"),
		Role:          r.PostFormValue("role"),
		Department:    r.PostFormValue("department"),
		Phone:         r.PostFormValue("phone"),
		DateOfJoining: r.PostFormValue("date_of_joining"),
	}

	file, header, err := formFile(r, "profile_picture")
	if err != nil {
		return user.CreateUserRequest{}, err
	}
	req.ProfilePicture, req.ProfilePictureHeader = file, header
	return req, nil
}
