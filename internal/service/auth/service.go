package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/systemlog"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash keeps the cost of a failed lookup close to a failed compare.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("ems-dummy-password"), bcrypt.DefaultCost)

type AuthServiceImpl struct {
	user.UserRepository
	systemlog.SystemLogRepository
	auth.RevokedSessionRepository
	jwt.Service
	google oauth.GoogleService
}

// NewAuthService wires the password and Google flows. googleService may be nil
// when Google sign-in is not configured.
func NewAuthService(userRepository user.UserRepository, systemLogRepository systemlog.SystemLogRepository, revokedSessionRepository auth.RevokedSessionRepository, jwtService jwt.Service, googleService oauth.GoogleService) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:           userRepository,
		SystemLogRepository:      systemLogRepository,
		RevokedSessionRepository: revokedSessionRepository,
		Service:                  jwtService,
		google:                   googleService,
	}
}

// Authenticate implements auth.AuthService.
func (a *AuthServiceImpl) Authenticate(ctx context.Context, username string, password string) (user.User, error) {
	userData, err := a.UserRepository.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return user.User{}, auth.ErrInvalidCredentials
		}
		return user.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if userData.PasswordHash == nil || *userData.PasswordHash == "" {
		return user.User{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(password)); err != nil {
		return user.User{}, auth.ErrInvalidCredentials
	}

	return userData, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, tracking auth.SessionTrackingRequest) (auth.Session, error) {
	if err := req.Validate(); err != nil {
		return auth.Session{}, err
	}

	userData, err := a.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return auth.Session{}, err
	}

	return a.startSession(ctx, userData, tracking)
}

// GoogleRedirect implements auth.AuthService.
func (a *AuthServiceImpl) GoogleRedirect(ctx context.Context, userAgent string) (string, string, error) {
	if a.google == nil {
		return "", "", auth.ErrOAuthDisabled
	}

	state, err := a.google.GenerateState()
	if err != nil {
		return "", "", err
	}
	return a.google.RedirectURL(state), state, nil
}

// OAuthCallbackGoogle implements auth.AuthService.
func (a *AuthServiceImpl) OAuthCallbackGoogle(ctx context.Context, code string, tracking auth.SessionTrackingRequest) (auth.Session, error) {
	if a.google == nil {
		return auth.Session{}, auth.ErrOAuthDisabled
	}

	info, err := a.google.FetchUser(ctx, code)
	if err != nil {
		return auth.Session{}, fmt.Errorf("failed to fetch google user: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.Session{}, auth.ErrEmailNotVerified
	}

	userData, err := a.UserRepository.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.Session{}, auth.ErrAccountNotLinked
		}
		return auth.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return a.startSession(ctx, userData, tracking)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, principal user.User, token string, tracking auth.SessionTrackingRequest) error {
	if token != "" {
		// Tokens that no longer decode are already unusable.
		if parsed, err := a.Service.JWTAuth().Decode(token); err == nil && parsed != nil {
			if err := a.RevokedSessionRepository.Revoke(ctx, token, parsed.Expiration()); err != nil {
				return fmt.Errorf("failed to revoke session: %w", err)
			}
		}
	}

	if principal.ID == "" {
		return nil
	}

	if _, err := a.SystemLogRepository.Append(ctx, newEntry(principal.ID, systemlog.ActionLoggedOut, tracking)); err != nil {
		return fmt.Errorf("failed to write logout entry: %w", err)
	}
	return nil
}

func (a *AuthServiceImpl) startSession(ctx context.Context, userData user.User, tracking auth.SessionTrackingRequest) (auth.Session, error) {
	token, expiresAt, err := a.Service.GenerateSessionToken(userData.ID, userData.Role)
	if err != nil {
		return auth.Session{}, fmt.Errorf("failed to create session token: %w", err)
	}

	if _, err := a.SystemLogRepository.Append(ctx, newEntry(userData.ID, systemlog.ActionLoggedIn, tracking)); err != nil {
		return auth.Session{}, fmt.Errorf("failed to write login entry: %w", err)
	}

	slog.Info("user logged in", "user_id", userData.ID, "ip", tracking.IPAddress)

	return auth.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      userData,
	}, nil
}

func newEntry(userID string, action string, tracking auth.SessionTrackingRequest) systemlog.Entry {
	entry := systemlog.Entry{
		UserID: userID,
		Action: action,
	}
	if ip := strings.TrimSpace(tracking.IPAddress); ip != "" {
		entry.IPAddress = &ip
	}
	return entry
}
