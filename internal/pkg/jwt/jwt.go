package jwt

import (
	"net/http"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// CookieName is the cookie jwtauth.TokenFromCookie reads.
const CookieName = "jwt"

type Service interface {
	GenerateSessionToken(userID string, role user.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	SessionCookie(token string, expiresAt int64) *http.Cookie
	ClearSessionCookie() *http.Cookie
}

type JWTService struct {
	secretKey             string
	sessionExpirationTime string
	secureCookie          bool
	tokenAuth             *jwtauth.JWTAuth
	now                   func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, sessionExpirationTime string, secureCookie bool) Service {
	return &JWTService{
		secretKey:             secretKey,
		sessionExpirationTime: sessionExpirationTime,
		secureCookie:          secureCookie,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                   time.Now,
	}
}

// GenerateSessionToken only carries the user id for lookup. The role claim
// is informational; authorization always reloads the user.
func (j *JWTService) GenerateSessionToken(userID string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.sessionExpirationTime)
	if err != nil {
		return "", 0, err
	}
	now := j.now()
	expiresAt = now.Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    "session",
		"iat":     now.Unix(),
		"exp":     expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) SessionCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

func (j *JWTService) ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
