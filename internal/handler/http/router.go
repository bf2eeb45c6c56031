package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	AllowedOrigins []string
	Env            string
	LogLevel       slog.Level
}

type Handlers struct {
	Auth         AuthHandler
	Dashboard    DashboardHandler
	User         UserHandler
	Report       ReportHandler
	Project      ProjectHandler
	Announcement AnnouncementHandler
	Attendance   AttendanceHandler
	Recruitment  RecruitmentHandler
	Shift        ShiftHandler
	Document     DocumentHandler
	Performance  PerformanceHandler
	Leave        LeaveHandler
	Feedback     FeedbackHandler
	Profile      ProfileHandler
	Upload       UploadHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, revocations middleware.RevocationChecker, principals middleware.PrincipalLoader, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ems-cmlabs"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Location"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/login", func(r chi.Router) {
		r.Get("/", h.Auth.LoginPage)
		r.Post("/", h.Auth.Login)
		r.Route("/oauth", func(r chi.Router) {
			r.Get("/google", h.Auth.LoginWithGoogle)
			r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
		})
	})

	// Requires authentication
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verify(JWTService.JWTAuth(), jwtauth.TokenFromCookie))
		r.Use(middleware.AuthRequired(JWTService, revocations, principals))

		r.Get("/logout", h.Auth.Logout)
		r.Post("/logout", h.Auth.Logout)

		r.Get("/", h.Dashboard.GetDashboard)
		r.Get("/uploads/*", h.Upload.ServeUpload)

		// Admin only
		r.Group(func(r chi.Router) {
			r.Use(middleware.Require(user.IsAdmin))

			r.Get("/manage-users", h.User.ListUsers)
			r.Get("/add-user", h.User.AddUserForm)
			r.Post("/add-user", h.User.AddUser)
			r.Get("/edit-user/{id}", h.User.EditUserForm)
			r.Post("/edit-user/{id}", h.User.EditUser)
			r.Post("/delete-user/{id}", h.User.DeleteUser)
			r.Get("/company-admin/roles", h.Report.GetRoles)
		})

		// Admin or HR
		r.Group(func(r chi.Router) {
			r.Use(middleware.Require(user.IsAdminOrHR))

			r.Get("/company-admin/monitor", h.Report.GetMonitor)
			r.Get("/company-admin/reports", h.Report.GetReports)
			r.Get("/company-admin/reports/preview/{type}", h.Report.GetPreview)

			r.Route("/hr", func(r chi.Router) {
				r.Get("/projects", h.Project.ListProjects)
				r.Post("/projects", h.Project.CreateProject)
				r.Get("/projects/{id}/tasks", h.Project.ListProjectTasks)
				r.Post("/projects/{id}/tasks", h.Project.CreateTask)
				r.Post("/tasks/{id}", h.Project.UpdateTask)

				r.Get("/announcements", h.Announcement.ListAnnouncements)
				r.Post("/announcements", h.Announcement.CreateAnnouncement)

				r.Get("/monitor", h.Attendance.MonitorAttendance)

				r.Get("/recruitment", h.Recruitment.ListJobs)
				r.Post("/recruitment", h.Recruitment.PostJob)
				r.Post("/recruitment/{id}/close", h.Recruitment.CloseJob)
				r.Post("/recruitment/{id}/candidates", h.Recruitment.AddCandidate)
				r.Post("/recruitment/candidates/{id}", h.Recruitment.UpdateCandidate)

				r.Get("/shifts", h.Shift.ListShifts)
				r.Post("/shifts", h.Shift.AssignShift)

				r.Get("/documents", h.Document.ListDocuments)
				r.Post("/documents", h.Document.UploadDocument)

				r.Get("/performance", h.Performance.ListReviews)
				r.Post("/performance", h.Performance.CreateReview)

				r.Get("/leaves", h.Leave.ListRequests)
				r.Post("/leaves/approve/{id}", h.Leave.ApproveRequest)
				r.Post("/leaves/reject/{id}", h.Leave.RejectRequest)

				r.Get("/feedback", h.Feedback.ListFeedback)
			})
		})

		// Any signed-in user; ownership is enforced by the services
		r.Route("/employee", func(r chi.Router) {
			r.Get("/tasks", h.Project.MyTasks)
			r.Post("/tasks/update/{id}", h.Project.UpdateTaskProgress)

			r.Get("/attendance", h.Attendance.MyAttendance)
			r.Post("/attendance", h.Attendance.RecordAttendance)

			r.Get("/leave", h.Leave.MyRequests)
			r.Post("/leave", h.Leave.ApplyRequest)
			r.Post("/leave/cancel/{id}", h.Leave.CancelRequest)

			r.Get("/performance", h.Performance.MyReviews)

			r.Get("/profile", h.Profile.MyProfile)
			r.Post("/profile", h.Profile.UpdateProfile)
			r.Get("/profile/{id}", h.Profile.ViewProfile)

			r.Get("/feedback", h.Feedback.MyFeedback)
			r.Post("/feedback", h.Feedback.SubmitFeedback)
		})
	})

	return r
}
