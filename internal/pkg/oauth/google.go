package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// StateCookieName holds the state between redirect and callback.
const StateCookieName = "oauth_state"

type GoogleService interface {
	// GenerateState returns an unguessable state value.
	GenerateState() (string, error)
	// RedirectURL is the consent page URL for state.
	RedirectURL(state string) string
	// FetchUser exchanges the authorization code and reads the Google profile.
	FetchUser(ctx context.Context, code string) (GoogleInformation, error)
}

type GoogleServiceImpl struct {
	config      *oauth2.Config
	userInfoURL string
}

func NewGoogleService(clientID string, clientSecret string, redirectURL string, scopes []string) GoogleService {
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       scopes,
		Endpoint:     google.Endpoint,
	}
	return &GoogleServiceImpl{config: config, userInfoURL: userInfoURL}
}

type GoogleInformation struct {
	GoogleID      string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
}

func (g *GoogleServiceImpl) GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate oauth state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func (g *GoogleServiceImpl) RedirectURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (g *GoogleServiceImpl) FetchUser(ctx context.Context, code string) (GoogleInformation, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return GoogleInformation{}, fmt.Errorf("exchange code: %w", err)
	}

	client := g.config.Client(ctx, token)
	resp, err := client.Get(g.userInfoURL)
	if err != nil {
		return GoogleInformation{}, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GoogleInformation{}, fmt.Errorf("fetch userinfo: unexpected status %d", resp.StatusCode)
	}

	var info GoogleInformation
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return GoogleInformation{}, fmt.Errorf("decode userinfo: %w", err)
	}
	return info, nil
}
