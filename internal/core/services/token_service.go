package services

import (
	"context"
	"strconv"
	"time"

	"github.com/dika1005/rodstore-backend/internal/apperrors"
	"github.com/dika1005/rodstore-backend/internal/core/domain"
	portsrepo "github.com/dika1005/rodstore-backend/internal/core/ports/repositories"
	portssvc "github.com/dika1005/rodstore-backend/internal/core/ports/services"
	"github.com/dika1005/rodstore-backend/internal/platform/config"
	"github.com/dika1005/rodstore-backend/internal/utils"
)

// tokenService implements TokenSvcFacade over the refresh-token ledger.
type tokenService struct {
	cfg         *config.Config
	userRepo    portsrepo.UserReader
	refreshRepo portsrepo.RefreshTokenRepositoryFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userRepo portsrepo.UserReader, refreshRepo portsrepo.RefreshTokenRepositoryFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) signPair(user *domain.User) (*portssvc.TokenPair, error) {
	subject := strconv.FormatInt(user.ID, 10)
	now := time.Now()

	accessToken, err := utils.GenerateAccessToken(subject, user.Role, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, apperrors.NewInternalServerError("failed to sign access token")
	}

	refreshToken, err := utils.GenerateRefreshToken(subject, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, apperrors.NewInternalServerError("failed to sign refresh token")
	}

	return &portssvc.TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  now.Add(s.cfg.JWTExpiryDuration),
		RefreshToken:     refreshToken,
		RefreshExpiresAt: now.Add(s.cfg.RefreshTokenExpiryDuration),
	}, nil
}

// IssueTokenPair signs a fresh pair and records the refresh token hash in the
// ledger. Only the hash is persisted.
func (s *tokenService) IssueTokenPair(ctx context.Context, user *domain.User) (*portssvc.TokenPair, error) {
	pair, err := s.signPair(user)
	if err != nil {
		return nil, err
	}

	err = s.refreshRepo.Store(ctx, domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: utils.HashRefreshToken(pair.RefreshToken),
		ExpiresAt: pair.RefreshExpiresAt,
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// Rotate exchanges a live refresh token for a fresh pair. The presented token
// is revoked and its replacement stored in one transaction, so each refresh
// token works exactly once.
func (s *tokenService) Rotate(ctx context.Context, refreshToken string) (*domain.User, *portssvc.TokenPair, error) {
	claims, err := utils.ParseRefreshToken(refreshToken, s.cfg.RefreshTokenSecret)
	if err != nil {
		return nil, nil, apperrors.NewUnauthorizedError("Token tidak valid")
	}

	oldHash := utils.HashRefreshToken(refreshToken)
	ledgerRow, err := s.refreshRepo.Lookup(ctx, oldHash)
	if err != nil {
		return nil, nil, err
	}

	// The signed subject and the ledger row must agree.
	subjectID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || subjectID != ledgerRow.UserID {
		return nil, nil, apperrors.NewUnauthorizedError("Token tidak valid")
	}

	user, err := s.userRepo.FindUserByID(ctx, ledgerRow.UserID)
	if err != nil {
		return nil, nil, apperrors.NewUnauthorizedError("Token tidak valid")
	}

	pair, err := s.signPair(user)
	if err != nil {
		return nil, nil, err
	}

	err = s.refreshRepo.Rotate(ctx, oldHash, domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: utils.HashRefreshToken(pair.RefreshToken),
		ExpiresAt: pair.RefreshExpiresAt,
	})
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

func (s *tokenService) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	return s.refreshRepo.Revoke(ctx, utils.HashRefreshToken(refreshToken))
}

func (s *tokenService) RevokeAllForUser(ctx context.Context, userID int64) error {
	return s.refreshRepo.RevokeAllForUser(ctx, userID)
}
