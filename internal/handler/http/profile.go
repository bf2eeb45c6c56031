package http

import (
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/ems-backend-go/internal/service/file"
	"github.com/go-chi/chi/v5"
)

const employeeProfilePath = "/employee/profile"

type ProfileHandler interface {
	MyProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	ViewProfile(w http.ResponseWriter, r *http.Request)
}

type profileHandlerImpl struct {
	userService user.UserService
	fileService file.FileService
}

func NewProfileHandler(userService user.UserService, fileService file.FileService) ProfileHandler {
	return &profileHandlerImpl{
		userService: userService,
		fileService: fileService,
	}
}

type profileView struct {
	Profile    user.UserResponse `json:"profile"`
	PictureURL *string           `json:"profile_picture_url,omitempty"`
}

func (h *profileHandlerImpl) view(u user.User) profileView {
	v := profileView{Profile: user.NewUserResponse(u)}
	if u.ProfilePicture != nil && *u.ProfilePicture != "" {
		url := h.fileService.FileURL(*u.ProfilePicture)
		v.PictureURL = &url
	}
	return v
}

// MyProfile handles GET /employee/profile
func (h *profileHandlerImpl) MyProfile(w http.ResponseWriter, r *http.Request) {
	response.View(w, r, h.view(principalFrom(r)))
}

// UpdateProfile handles POST /employee/profile
func (h *profileHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	picture, header, err := formFile(r, "profile_picture")
	if err != nil {
		response.BadRequest(w, "Invalid profile picture upload", nil)
		return
	}
	if picture != nil {
		defer picture.Close()
	}

	req := user.UpdateProfileRequest{
		FirstName:            r.PostFormValue("first_name"),
		LastName:             r.PostFormValue("last_name"),
		Email:                r.PostFormValue("email"),
		Phone:                r.PostFormValue("phone"),
		ProfilePicture:       picture,
		ProfilePictureHeader: header,
	}

	if _, err := h.userService.UpdateProfile(r.Context(), principalFrom(r), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.RedirectWithFlash(w, employeeProfilePath, response.FlashSuccess, "Profile updated!")
}

// ViewProfile handles GET /employee/profile/{id}. Only the owner or an
// admin may look; anyone else is sent back to the dashboard.
func (h *profileHandlerImpl) ViewProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !user.SelfOrAdmin(id)(principalFrom(r)) {
		response.Redirect(w, "/")
		return
	}

	target, err := h.userService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, h.view(target))
}
