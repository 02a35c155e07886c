package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dika1005/rodstore-backend/internal/core/domain"
	portssvc "github.com/dika1005/rodstore-backend/internal/core/ports/services"
	"github.com/dika1005/rodstore-backend/internal/platform/config"
	"github.com/dika1005/rodstore-backend/internal/platform/oauthstate"
	"github.com/dika1005/rodstore-backend/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// googleOAuthHandlerService implements the GoogleOAuthHandlerSvcFacade.
type googleOAuthHandlerService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
	stateStore   *oauthstate.Store
}

// NewGoogleOAuthHandlerService creates a new instance of googleOAuthHandlerService.
func NewGoogleOAuthHandlerService(cfg *config.Config, stateStore *oauthstate.Store) portssvc.GoogleOAuthHandlerSvcFacade {
	return &googleOAuthHandlerService{
		cfg:        cfg,
		stateStore: stateStore,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*googleOAuthHandlerService)(nil)

// GenerateStateString creates a secure random string to be used as a CSRF
// token for the OAuth flow and records it in the replay guard.
func (s *googleOAuthHandlerService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	if err := s.stateStore.Save(ctx, state); err != nil {
		return "", fmt.Errorf("failed to record OAuth state: %w", err)
	}
	return state, nil
}

// ConsumeState checks the returned state against the replay guard and burns it.
func (s *googleOAuthHandlerService) ConsumeState(ctx context.Context, state string) bool {
	return s.stateStore.Consume(ctx, state)
}

// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
func (s *googleOAuthHandlerService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (s *googleOAuthHandlerService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// GetUserInfo uses the access token to get user information from Google.
func (s *googleOAuthHandlerService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from google: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google api returned non-200 status for userinfo: %s", resp.Status)
	}

	var userInfo domain.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info from google: %w", err)
	}

	return &userInfo, nil
}

// ValidateGoogleIDToken validates an ID token received from Google and returns the payload if valid.
func (s *googleOAuthHandlerService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}

	return payload, nil
}
