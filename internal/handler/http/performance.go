package http

import (
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/performance"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
)

const hrPerformancePath = "/hr/performance"

type PerformanceHandler interface {
	ListReviews(w http.ResponseWriter, r *http.Request)
	CreateReview(w http.ResponseWriter, r *http.Request)
	MyReviews(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performance.PerformanceService
	userService        user.UserService
}

func NewPerformanceHandler(performanceService performance.PerformanceService, userService user.UserService) PerformanceHandler {
	return &performanceHandlerImpl{
		performanceService: performanceService,
		userService:        userService,
	}
}

// ListReviews handles GET /hr/performance
func (h *performanceHandlerImpl) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.performanceService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employees, err := h.userService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, map[string]interface{}{
		"reviews":   performance.NewReviewResponses(reviews),
		"employees": user.NewUserResponses(employees),
	})
}

// CreateReview handles POST /hr/performance
func (h *performanceHandlerImpl) CreateReview(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := performance.CreateReviewRequest{
		EmployeeID:        r.PostFormValue("employee"),
		Rating:            r.PostFormValue("rating"),
		Comments:          r.PostFormValue("comments"),
		ProductivityScore: r.PostFormValue("productivity_score"),
		AttendanceScore:   r.PostFormValue("attendance_score"),
	}

	if _, err := h.performanceService.Create(r.Context(), principalFrom(r), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.RedirectWithFlash(w, hrPerformancePath, response.FlashSuccess, "Review saved!")
}

// MyReviews handles GET /employee/performance
func (h *performanceHandlerImpl) MyReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.performanceService.Mine(r.Context(), principalFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.View(w, r, map[string]interface{}{
		"reviews": performance.NewReviewResponses(reviews),
	})
}
