package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dika1005/rodstore-backend/internal/apperrors"
	"github.com/dika1005/rodstore-backend/internal/core/domain"
	portssvc "github.com/dika1005/rodstore-backend/internal/core/ports/services"
	"github.com/dika1005/rodstore-backend/internal/core/services"
	"github.com/dika1005/rodstore-backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, email string, role string) error {
	args := m.Called(ctx, email, role)
	return args.Error(0)
}

func (m *MockUserRepository) UpsertGoogleUser(ctx context.Context, email string, name string) (*domain.User, error) {
	args := m.Called(ctx, email, name)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, userID int64, name string, address *string) error {
	args := m.Called(ctx, userID, name, address)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()

	suite.mockUserRepo.On("ExistsByEmail", ctx, "budi@example.com").Return(false, nil).Once()
	suite.mockUserRepo.On("CreateUser", ctx, mock.MatchedBy(func(user *domain.User) bool {
		return user.Email == "budi@example.com" &&
			user.Name == "Budi" &&
			user.Role == domain.RoleUser &&
			user.PasswordHash != "rahasia-banget" &&
			utils.CheckPasswordHash("rahasia-banget", user.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, "Budi", "budi@example.com", "rahasia-banget", nil)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("budi@example.com", user.Email)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_StoresAddressOnTheRow() {
	ctx := context.Background()
	address := "Jl. Mancing No. 1, Bandung"

	suite.mockUserRepo.On("ExistsByEmail", ctx, "budi@example.com").Return(false, nil).Once()
	suite.mockUserRepo.On("CreateUser", ctx, mock.MatchedBy(func(user *domain.User) bool {
		return user.Address != nil && *user.Address == address
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, "Budi", "budi@example.com", "rahasia-banget", &address)

	suite.Require().NoError(err)
	suite.Require().NotNil(user.Address)
	suite.Equal(address, *user.Address)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("ExistsByEmail", ctx, "budi@example.com").Return(true, nil).Once()

	user, err := suite.service.Register(ctx, "Budi", "budi@example.com", "rahasia-banget", nil)

	suite.Require().Error(err)
	suite.Nil(user)

	var appErr *apperrors.AppError
	suite.Require().True(errors.As(err, &appErr))
	suite.Equal(400, appErr.Code)
	suite.Equal("Email sudah terdaftar", appErr.Message)

	suite.mockUserRepo.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("rahasia-banget")
	suite.Require().NoError(err)

	stored := &domain.User{ID: 42, Email: "budi@example.com", PasswordHash: hash, Role: domain.RoleUser}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "budi@example.com").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "budi@example.com", "rahasia-banget")

	suite.Require().NoError(err)
	suite.Equal(int64(42), user.ID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPasswordAndUnknownEmailLookAlike() {
	ctx := context.Background()
	hash, err := utils.HashPassword("rahasia-banget")
	suite.Require().NoError(err)

	stored := &domain.User{ID: 42, Email: "budi@example.com", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "budi@example.com").Return(stored, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, errWrongPassword := suite.service.Authenticate(ctx, "budi@example.com", "salah")
	_, errUnknownEmail := suite.service.Authenticate(ctx, "ghost@example.com", "salah")

	suite.Require().Error(errWrongPassword)
	suite.Require().Error(errUnknownEmail)

	var appErr1, appErr2 *apperrors.AppError
	suite.Require().True(errors.As(errWrongPassword, &appErr1))
	suite.Require().True(errors.As(errUnknownEmail, &appErr2))
	suite.Equal(appErr1.Message, appErr2.Message)
	suite.Equal(401, appErr1.Code)
	suite.Equal(401, appErr2.Code)
}

func (suite *UserServiceTestSuite) TestAuthenticate_GoogleOnlyAccount() {
	ctx := context.Background()

	// OAuth accounts carry an empty hash; password login must not work.
	stored := &domain.User{ID: 42, Email: "budi@example.com", PasswordHash: ""}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "budi@example.com").Return(stored, nil).Once()

	_, err := suite.service.Authenticate(ctx, "budi@example.com", "")
	suite.Require().Error(err)
}

func (suite *UserServiceTestSuite) TestUpdateRole_InvalidRole() {
	ctx := context.Background()

	err := suite.service.UpdateRole(ctx, "budi@example.com", "superadmin")

	suite.Require().Error(err)
	var appErr *apperrors.AppError
	suite.Require().True(errors.As(err, &appErr))
	suite.Equal("Role tidak valid", appErr.Message)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestLoginWithGoogle() {
	ctx := context.Background()

	stored := &domain.User{ID: 7, Email: "budi@example.com", Name: "Budi", Role: domain.RoleUser}
	suite.mockUserRepo.On("UpsertGoogleUser", ctx, "budi@example.com", "Budi").Return(stored, nil).Once()

	user, err := suite.service.LoginWithGoogle(ctx, "budi@example.com", "Budi")

	suite.Require().NoError(err)
	suite.Equal(int64(7), user.ID)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
