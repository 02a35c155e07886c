package services

import (
	"context"
	"errors"

	"github.com/dika1005/rodstore-backend/internal/apperrors"
	"github.com/dika1005/rodstore-backend/internal/core/domain"
	portsrepo "github.com/dika1005/rodstore-backend/internal/core/ports/repositories"
	portssvc "github.com/dika1005/rodstore-backend/internal/core/ports/services"
	"github.com/dika1005/rodstore-backend/internal/middleware"
	"github.com/dika1005/rodstore-backend/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Register(ctx context.Context, name string, email string, password string, address *string) (*domain.User, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.NewInternalServerError("Terjadi kesalahan internal pada server.")
	}
	if exists {
		return nil, apperrors.NewBadRequestError("Email sudah terdaftar")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperrors.NewInternalServerError("Terjadi kesalahan internal pada server.")
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Address:      address,
		Role:         domain.RoleUser,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to create user", "error", err)
		return nil, apperrors.NewInternalServerError("Terjadi kesalahan internal pada server.")
	}
	return user, nil
}

// Authenticate returns the same error for unknown email and wrong password,
// so the login endpoint does not leak which emails are registered.
func (s *userService) Authenticate(ctx context.Context, email string, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Email atau password salah")
		}
		return nil, apperrors.NewInternalServerError("Terjadi kesalahan internal pada server.")
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("Email atau password salah")
	}
	return user, nil
}

func (s *userService) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) LoginWithGoogle(ctx context.Context, email string, name string) (*domain.User, error) {
	user, err := s.userRepo.UpsertGoogleUser(ctx, email, name)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to upsert google user", "error", err)
		return nil, apperrors.NewInternalServerError("Terjadi kesalahan internal pada server.")
	}
	return user, nil
}

func (s *userService) UpdateRole(ctx context.Context, email string, role string) error {
	if !domain.IsValidRole(role) {
		return apperrors.NewBadRequestError("Role tidak valid")
	}
	err := s.userRepo.UpdateRole(ctx, email, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("User tidak ditemukan")
		}
		return apperrors.NewInternalServerError("Terjadi kesalahan internal pada server.")
	}
	return nil
}

func (s *userService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User tidak ditemukan")
		}
		return nil, apperrors.NewInternalServerError("Terjadi kesalahan internal pada server.")
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, name string, address *string) error {
	if name == "" {
		return apperrors.NewBadRequestError("Nama tidak boleh kosong")
	}
	err := s.userRepo.UpdateProfile(ctx, userID, name, address)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("User tidak ditemukan")
		}
		return apperrors.NewInternalServerError("Terjadi kesalahan internal pada server.")
	}
	return nil
}
