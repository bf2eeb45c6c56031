package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/config"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	appHTTP "github.com/cmlabs-hris/ems-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/ems-backend-go/internal/repository/postgresql"
	announcementService "github.com/cmlabs-hris/ems-backend-go/internal/service/announcement"
	attendanceService "github.com/cmlabs-hris/ems-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/ems-backend-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/ems-backend-go/internal/service/dashboard"
	documentService "github.com/cmlabs-hris/ems-backend-go/internal/service/document"
	feedbackService "github.com/cmlabs-hris/ems-backend-go/internal/service/feedback"
	"github.com/cmlabs-hris/ems-backend-go/internal/service/file"
	leaveService "github.com/cmlabs-hris/ems-backend-go/internal/service/leave"
	performanceService "github.com/cmlabs-hris/ems-backend-go/internal/service/performance"
	projectService "github.com/cmlabs-hris/ems-backend-go/internal/service/project"
	recruitmentService "github.com/cmlabs-hris/ems-backend-go/internal/service/recruitment"
	reportService "github.com/cmlabs-hris/ems-backend-go/internal/service/report"
	shiftService "github.com/cmlabs-hris/ems-backend-go/internal/service/shift"
	userService "github.com/cmlabs-hris/ems-backend-go/internal/service/user"
)

func main() {
	createAdmin := flag.String("create-admin", "", "create a superuser as username:password and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	level := parseLevel(cfg.App.LogLevel)
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("Error applying schema", "error", err)
		os.Exit(1)
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			slog.Error("Failed to initialize local storage", "error", err)
			os.Exit(1)
		}
	default:
		slog.Error("Unsupported storage type", "type", cfg.Storage.Type)
		os.Exit(1)
	}
	fileService := file.NewFileService(fileStorage)

	userRepo := postgresql.NewUserRepository(db)
	systemLogRepo := postgresql.NewSystemLogRepository(db)
	revokedSessionRepo := postgresql.NewRevokedSessionRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	jobOpeningRepo := postgresql.NewJobOpeningRepository(db)
	candidateRepo := postgresql.NewCandidateRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)
	feedbackRepo := postgresql.NewFeedbackRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	userSvc := userService.NewUserService(userRepo, fileService)

	if *createAdmin != "" {
		if err := bootstrapAdmin(ctx, userSvc, userRepo, *createAdmin); err != nil {
			slog.Error("Failed to create admin", "error", err)
			os.Exit(1)
		}
		return
	}

	JWTService := jwt.NewJWTService(cfg.Session.Secret, cfg.Session.Expiration, cfg.Session.SecureCookie)

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	authSvc := serviceAuth.NewAuthService(userRepo, systemLogRepo, revokedSessionRepo, JWTService, googleService)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)
	reportSvc := reportService.NewReportService(reportRepo, systemLogRepo)
	projectSvc := projectService.NewProjectService(projectRepo, taskRepo, userRepo)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo)
	recruitmentSvc := recruitmentService.NewRecruitmentService(jobOpeningRepo, candidateRepo, fileService)
	shiftSvc := shiftService.NewShiftService(shiftRepo, userRepo)
	documentSvc := documentService.NewDocumentService(documentRepo, fileService)
	performanceSvc := performanceService.NewPerformanceService(reviewRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo)
	feedbackSvc := feedbackService.NewFeedbackService(feedbackRepo)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.App.AllowedOrigins,
			Env:            cfg.App.Env,
			LogLevel:       level,
		},
		JWTService,
		revokedSessionRepo,
		userSvc,
		appHTTP.Handlers{
			Auth:         appHTTP.NewAuthHandler(JWTService, authSvc, googleService != nil),
			Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
			User:         appHTTP.NewUserHandler(userSvc),
			Report:       appHTTP.NewReportHandler(reportSvc),
			Project:      appHTTP.NewProjectHandler(projectSvc, userSvc),
			Announcement: appHTTP.NewAnnouncementHandler(announcementSvc),
			Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
			Recruitment:  appHTTP.NewRecruitmentHandler(recruitmentSvc, fileService),
			Shift:        appHTTP.NewShiftHandler(shiftSvc),
			Document:     appHTTP.NewDocumentHandler(documentSvc, fileService),
			Performance:  appHTTP.NewPerformanceHandler(performanceSvc, userSvc),
			Leave:        appHTTP.NewLeaveHandler(leaveSvc),
			Feedback:     appHTTP.NewFeedbackHandler(feedbackSvc),
			Profile:      appHTTP.NewProfileHandler(userSvc, fileService),
			Upload:       appHTTP.NewUploadHandler(fileStorage),
		},
	)

	scheduler := cron.NewScheduler()
	scheduler.Register(cron.RevokedSessionSweep(revokedSessionRepo))
	scheduler.Start(ctx)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env, "google_login", googleService != nil)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	scheduler.Wait()
}

// bootstrapAdmin creates the first superuser so the user management pages
// can be reached on a fresh database.
func bootstrapAdmin(ctx context.Context, users user.UserService, repo user.UserRepository, credentials string) error {
	username, password, ok := strings.Cut(credentials, ":")
	if !ok || username == "" || password == "" {
		return errors.New("expected username:password")
	}

	created, err := users.Create(ctx, user.CreateUserRequest{
		Username: username,
		Password: password,
		Role:     string(user.RoleAdmin),
	})
	if err != nil {
		return err
	}

	created.IsSuperuser = true
	if _, err := repo.Update(ctx, created); err != nil {
		return fmt.Errorf("failed to mark superuser: %w", err)
	}

	slog.Info("Superuser created", "user_id", created.ID, "username", created.Username)
	return nil
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
