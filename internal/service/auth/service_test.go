package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/systemlog"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/oauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-session-tokens!!"

type fakeUserRepo struct {
	user.UserRepository
	users map[string]user.User
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

type fakeLogRepo struct {
	entries []systemlog.Entry
	err     error
}

func (f *fakeLogRepo) Append(ctx context.Context, e systemlog.Entry) (systemlog.Entry, error) {
	if f.err != nil {
		return systemlog.Entry{}, f.err
	}
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakeLogRepo) Recent(ctx context.Context, limit int) ([]systemlog.Entry, error) {
	return f.entries, nil
}

type fakeRevoked struct {
	tokens map[string]time.Time
	err    error
}

func (f *fakeRevoked) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.tokens[token] = expiresAt
	return nil
}

func (f *fakeRevoked) IsRevoked(ctx context.Context, token string) (bool, error) {
	_, ok := f.tokens[token]
	return ok, nil
}

func (f *fakeRevoked) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

type fakeGoogle struct {
	info oauth.GoogleInformation
	err  error
}

func (f *fakeGoogle) GenerateState() (string, error) { return "state-123", nil }

func (f *fakeGoogle) RedirectURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (f *fakeGoogle) FetchUser(ctx context.Context, code string) (oauth.GoogleInformation, error) {
	return f.info, f.err
}

func newTestService(t *testing.T, google oauth.GoogleService) (*AuthServiceImpl, *fakeLogRepo, *fakeRevoked) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := string(hash)

	users := &fakeUserRepo{users: map[string]user.User{
		"u-1": {ID: "u-1", Username: "alice", Email: "alice@example.com", PasswordHash: &hashed, Role: user.RoleEmployee},
		"u-2": {ID: "u-2", Username: "nopass", Email: "nopass@example.com", Role: user.RoleHR},
	}}
	logs := &fakeLogRepo{}
	jwtService := jwt.NewJWTService(testSecret, "1h", false)

	revoked := &fakeRevoked{tokens: map[string]time.Time{}}

	svc := NewAuthService(users, logs, revoked, jwtService, google).(*AuthServiceImpl)
	return svc, logs, revoked
}

func TestAuthenticate(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		u, err := svc.Authenticate(ctx, "alice", "s3cret-pass")
		require.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice", "nope")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "mallory", "s3cret-pass")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("account without password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nopass", "")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestLogin_WritesSystemLog(t *testing.T) {
	svc, logs, _ := newTestService(t, nil)

	session, err := svc.Login(context.Background(),
		auth.LoginRequest{Username: "alice", Password: "s3cret-pass"},
		auth.SessionTrackingRequest{IPAddress: "10.0.0.7"},
	)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "u-1", session.User.ID)

	require.Len(t, logs.entries, 1)
	assert.Equal(t, systemlog.ActionLoggedIn, logs.entries[0].Action)
	require.NotNil(t, logs.entries[0].IPAddress)
	assert.Equal(t, "10.0.0.7", *logs.entries[0].IPAddress)

	token, err := svc.JWTAuth().Decode(session.Token)
	require.NoError(t, err)
	userID, _ := token.Get("user_id")
	assert.Equal(t, "u-1", userID)
}

func TestLogin_InvalidCredentialsWritesNothing(t *testing.T) {
	svc, logs, _ := newTestService(t, nil)

	_, err := svc.Login(context.Background(),
		auth.LoginRequest{Username: "alice", Password: "wrong"},
		auth.SessionTrackingRequest{},
	)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Empty(t, logs.entries)
}

func TestLogin_ValidationError(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	_, err := svc.Login(context.Background(), auth.LoginRequest{}, auth.SessionTrackingRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username is required")
}

func TestLogout_RevokesTokenAndLogs(t *testing.T) {
	svc, logs, revoked := newTestService(t, nil)
	ctx := context.Background()

	session, err := svc.Login(ctx, auth.LoginRequest{Username: "alice", Password: "s3cret-pass"}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	err = svc.Logout(ctx, session.User, session.Token, auth.SessionTrackingRequest{IPAddress: "10.0.0.8"})
	require.NoError(t, err)

	expiresAt, ok := revoked.tokens[session.Token]
	require.True(t, ok)
	assert.Equal(t, session.ExpiresAt, expiresAt.Unix())
	require.Len(t, logs.entries, 2)
	assert.Equal(t, systemlog.ActionLoggedOut, logs.entries[1].Action)
	assert.Equal(t, "u-1", logs.entries[1].UserID)
}

func TestLogout_LogFailure(t *testing.T) {
	svc, logs, _ := newTestService(t, nil)
	logs.err = errors.New("db down")

	err := svc.Logout(context.Background(), user.User{ID: "u-1"}, "", auth.SessionTrackingRequest{})
	assert.ErrorContains(t, err, "db down")
}

func TestLogout_RevocationFailure(t *testing.T) {
	svc, logs, revoked := newTestService(t, nil)
	ctx := context.Background()

	session, err := svc.Login(ctx, auth.LoginRequest{Username: "alice", Password: "s3cret-pass"}, auth.SessionTrackingRequest{})
	require.NoError(t, err)
	revoked.err = errors.New("db down")

	err = svc.Logout(ctx, session.User, session.Token, auth.SessionTrackingRequest{})
	assert.ErrorContains(t, err, "revoke session")
	assert.Len(t, logs.entries, 1)
}

func TestLogout_UndecodableTokenSkipsRevocation(t *testing.T) {
	svc, _, revoked := newTestService(t, nil)

	err := svc.Logout(context.Background(), user.User{ID: "u-1"}, "not-a-token", auth.SessionTrackingRequest{})
	require.NoError(t, err)
	assert.Empty(t, revoked.tokens)
}

func TestGoogle_Disabled(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	_, _, err := svc.GoogleRedirect(context.Background(), "ua")
	assert.ErrorIs(t, err, auth.ErrOAuthDisabled)

	_, err = svc.OAuthCallbackGoogle(context.Background(), "code", auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrOAuthDisabled)
}

func TestGoogle_Callback(t *testing.T) {
	ctx := context.Background()

	t.Run("existing verified account", func(t *testing.T) {
		svc, logs, _ := newTestService(t, &fakeGoogle{info: oauth.GoogleInformation{Email: "ALICE@example.com", VerifiedEmail: true}})

		url, state, err := svc.GoogleRedirect(ctx, "ua")
		require.NoError(t, err)
		assert.Equal(t, "state-123", state)
		assert.Contains(t, url, "state=state-123")

		session, err := svc.OAuthCallbackGoogle(ctx, "code", auth.SessionTrackingRequest{})
		require.NoError(t, err)
		assert.Equal(t, "u-1", session.User.ID)
		require.Len(t, logs.entries, 1)
		assert.Equal(t, systemlog.ActionLoggedIn, logs.entries[0].Action)
	})

	t.Run("unverified email", func(t *testing.T) {
		svc, _, _ := newTestService(t, &fakeGoogle{info: oauth.GoogleInformation{Email: "alice@example.com"}})
		_, err := svc.OAuthCallbackGoogle(ctx, "code", auth.SessionTrackingRequest{})
		assert.ErrorIs(t, err, auth.ErrEmailNotVerified)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, _, _ := newTestService(t, &fakeGoogle{info: oauth.GoogleInformation{Email: "bob@example.com", VerifiedEmail: true}})
		_, err := svc.OAuthCallbackGoogle(ctx, "code", auth.SessionTrackingRequest{})
		assert.ErrorIs(t, err, auth.ErrAccountNotLinked)
	})
}
