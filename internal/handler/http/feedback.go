package http

import (
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/feedback"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
)

const employeeFeedbackPath = "/employee/feedback"

type FeedbackHandler interface {
	ListFeedback(w http.ResponseWriter, r *http.Request)
	MyFeedback(w http.ResponseWriter, r *http.Request)
	SubmitFeedback(w http.ResponseWriter, r *http.Request)
}

type feedbackHandlerImpl struct {
	feedbackService feedback.FeedbackService
}

func NewFeedbackHandler(feedbackService feedback.FeedbackService) FeedbackHandler {
	return &feedbackHandlerImpl{feedbackService: feedbackService}
}

// ListFeedback handles GET /hr/feedback
func (h *feedbackHandlerImpl) ListFeedback(w http.ResponseWriter, r *http.Request) {
	items, err := h.feedbackService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, map[string]interface{}{
		"feedback": feedback.NewFeedbackResponses(items),
	})
}

// MyFeedback handles GET /employee/feedback
func (h *feedbackHandlerImpl) MyFeedback(w http.ResponseWriter, r *http.Request) {
	items, err := h.feedbackService.Mine(r.Context(), principalFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, map[string]interface{}{
		"feedback": feedback.NewFeedbackResponses(items),
	})
}

// SubmitFeedback handles POST /employee/feedback
func (h *feedbackHandlerImpl) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := feedback.SubmitFeedbackRequest{
		Subject: r.PostFormValue("subject"),
		Comment: r.PostFormValue("comment"),
	}

	if _, err := h.feedbackService.Submit(r.Context(), principalFrom(r), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.RedirectWithFlash(w, employeeFeedbackPath, response.FlashSuccess, "Feedback sent!")
}
