package services

import (
	"context"
	"time"

	"github.com/dika1005/rodstore-backend/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenPair is an issued access/refresh token pair with their expiries.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// IssueTokenPair signs a fresh access+refresh pair for the user and
	// records the refresh token in the ledger.
	IssueTokenPair(ctx context.Context, user *domain.User) (*TokenPair, error)

	// Rotate validates a presented refresh token against the ledger, revokes
	// it and issues a replacement pair. A token can be rotated exactly once.
	Rotate(ctx context.Context, refreshToken string) (*domain.User, *TokenPair, error)

	// RevokeRefreshToken revokes a single presented token (logout).
	RevokeRefreshToken(ctx context.Context, refreshToken string) error

	// RevokeAllForUser revokes every live refresh token of a user.
	RevokeAllForUser(ctx context.Context, userID int64) error
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a secure random string used as a CSRF token
	// for the OAuth flow and records it for single use.
	GenerateStateString(ctx context.Context) (string, error)

	// ConsumeState checks a returned state value and invalidates it.
	ConsumeState(ctx context.Context, state string) bool

	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GetUserInfo uses the access token to get user information from Google.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)

	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
