package http

import (
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/announcement"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
)

const hrAnnouncementsPath = "/hr/announcements"

type AnnouncementHandler interface {
	ListAnnouncements(w http.ResponseWriter, r *http.Request)
	CreateAnnouncement(w http.ResponseWriter, r *http.Request)
}

type announcementHandlerImpl struct {
	announcementService announcement.AnnouncementService
}

func NewAnnouncementHandler(announcementService announcement.AnnouncementService) AnnouncementHandler {
	return &announcementHandlerImpl{announcementService: announcementService}
}

// ListAnnouncements handles GET /hr/announcements
func (h *announcementHandlerImpl) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	items, err := h.announcementService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, map[string]interface{}{
		"announcements": announcement.NewAnnouncementResponses(items),
	})
}

// CreateAnnouncement handles POST /hr/announcements
func (h *announcementHandlerImpl) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := announcement.CreateAnnouncementRequest{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
	}

	if _, err := h.announcementService.Create(r.Context(), principalFrom(r), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.RedirectWithFlash(w, hrAnnouncementsPath, response.FlashSuccess, "Announcement sent!")
}
