package services

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"meetingbot/config"
	"meetingbot/models"
)

// NewGoogleOAuthConfig builds the oauth2 config for the calendar-owner
// login flow. The redirect URL must match the one registered in the
// Google console under OAuth 2.0 client IDs.
func NewGoogleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.GetGoogleClientID(),
		ClientSecret: config.GetGoogleClientSecret(),
		RedirectURL:  config.GetRedirectBaseURL() + "/connect/google/authorized_redirect_uri",
		Scopes: []string{
			calendar.CalendarEventsScope,
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// GoogleAuthService runs the authorization-code flow for the single
// calendar owner and persists the resulting credential.
type GoogleAuthService struct {
	cfg   *oauth2.Config
	store CredentialStore
}

func NewGoogleAuthService(cfg *oauth2.Config, store CredentialStore) *GoogleAuthService {
	return &GoogleAuthService{cfg: cfg, store: store}
}

// AuthURL is the Google consent page to send the owner to. Offline
// access is requested so the token comes with a refresh token.
func (s *GoogleAuthService) AuthURL() string {
	return s.cfg.AuthCodeURL("calendar-owner", oauth2.AccessTypeOffline)
}

// RedirectURL exposes the registered callback, for the helper page.
func (s *GoogleAuthService) RedirectURL() string {
	return s.cfg.RedirectURL
}

// Authorize exchanges the callback code and saves the credential.
// Whoever completes the flow last becomes the calendar owner.
func (s *GoogleAuthService) Authorize(ctx context.Context, code string) error {
	if code == "" {
		return fmt.Errorf("authorization callback delivered no code")
	}

	tok, err := s.cfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	return s.store.Save(models.CredentialFromToken(tok))
}
