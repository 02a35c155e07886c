package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dika1005/rodstore-backend/internal/core/domain"
	portssvc "github.com/dika1005/rodstore-backend/internal/core/ports/services"
	"github.com/dika1005/rodstore-backend/internal/platform/config"
	"github.com/dika1005/rodstore-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, name string, email string, password string, address *string) (*domain.User, error) {
	args := m.Called(ctx, name, email, password, address)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email string, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) LoginWithGoogle(ctx context.Context, email string, name string) (*domain.User, error) {
	args := m.Called(ctx, email, name)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) UpdateRole(ctx context.Context, email string, role string) error {
	args := m.Called(ctx, email, role)
	return args.Error(0)
}

func (m *MockUserService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID int64, name string, address *string) error {
	args := m.Called(ctx, userID, name, address)
	return args.Error(0)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) IssueTokenPair(ctx context.Context, user *domain.User) (*portssvc.TokenPair, error) {
	args := m.Called(ctx, user)
	if pair, ok := args.Get(0).(*portssvc.TokenPair); ok {
		return pair, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTokenService) Rotate(ctx context.Context, refreshToken string) (*domain.User, *portssvc.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	var user *domain.User
	var pair *portssvc.TokenPair
	if u, ok := args.Get(0).(*domain.User); ok {
		user = u
	}
	if p, ok := args.Get(1).(*portssvc.TokenPair); ok {
		pair = p
	}
	return user, pair, args.Error(2)
}

func (m *MockTokenService) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockTokenService) RevokeAllForUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleOAuthService) ConsumeState(ctx context.Context, state string) bool {
	args := m.Called(ctx, state)
	return args.Bool(0)
}

func (m *MockGoogleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	args := m.Called(ctx, state)
	return args.String(0)
}

func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if token, ok := args.Get(0).(*oauth2.Token); ok {
		return token, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGoogleOAuthService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	args := m.Called(ctx, token)
	if info, ok := args.Get(0).(*domain.GoogleUserInfo); ok {
		return info, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if payload, ok := args.Get(0).(*idtoken.Payload); ok {
		return payload, args.Error(1)
	}
	return nil, args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                  "test-access-secret",
		JWTExpiryDuration:          5 * time.Minute,
		JWTIssuer:                  "rodstore-backend-test",
		RefreshTokenSecret:         "test-refresh-secret",
		RefreshTokenExpiryDuration: 120 * time.Hour,
		FrontendBaseURL:            "http://localhost:3000",
	}
}

type AuthHandlerTestSuite struct {
	suite.Suite
	userService  *MockUserService
	tokenService *MockTokenService
	cfg          *config.Config
	router       *gin.Engine
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.userService = new(MockUserService)
	s.tokenService = new(MockTokenService)
	s.cfg = testConfig()

	container := &portssvc.ServiceContainer{User: s.userService, Token: s.tokenService}
	s.router = gin.New()
	registerAuthRoutes(s.router.Group("/api"), s.cfg, container)
}

func (s *AuthHandlerTestSuite) TestRegisterPassesAddressThrough() {
	address := "Jl. Mancing No. 1, Bandung"
	created := &domain.User{ID: 9, Name: "Budi", Email: "budi@example.com", Address: &address, Role: domain.RoleUser}

	s.userService.On("Register", mock.Anything, "Budi", "budi@example.com", "rahasia-banget", mock.MatchedBy(func(addr *string) bool {
		return addr != nil && *addr == address
	})).Return(created, nil).Once()

	body := `{"name": "Budi", "email": "budi@example.com", "password": "rahasia-banget", "address": "Jl. Mancing No. 1, Bandung"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusCreated, w.Code)
	s.userService.AssertExpectations(s.T())
	s.userService.AssertNotCalled(s.T(), "UpdateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthHandlerTestSuite) TestLogoutRevokesPresentedRefreshToken() {
	accessToken, err := utils.GenerateAccessToken("42", domain.RoleUser, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	s.Require().NoError(err)

	s.tokenService.On("RevokeRefreshToken", mock.Anything, "the-refresh-token").Return(nil).Once()
	s.tokenService.On("RevokeAllForUser", mock.Anything, int64(42)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: accessToken})
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "the-refresh-token"})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.tokenService.AssertExpectations(s.T())

	// Both auth cookies must be expired in the response.
	cookies := w.Result().Cookies()
	expired := map[string]bool{}
	for _, c := range cookies {
		if c.MaxAge < 0 {
			expired[c.Name] = true
		}
	}
	s.True(expired["jwt"])
	s.True(expired["refresh_token"])
}

func (s *AuthHandlerTestSuite) TestLogoutWithoutAccessTokenStillRevokesRefreshCookie() {
	s.tokenService.On("RevokeRefreshToken", mock.Anything, "the-refresh-token").Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "the-refresh-token"})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.tokenService.AssertExpectations(s.T())
	s.tokenService.AssertNotCalled(s.T(), "RevokeAllForUser", mock.Anything, mock.Anything)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type GoogleCallbackTestSuite struct {
	suite.Suite
	oauthService *MockGoogleOAuthService
	userService  *MockUserService
	tokenService *MockTokenService
	cfg          *config.Config
	router       *gin.Engine
}

func (s *GoogleCallbackTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.oauthService = new(MockGoogleOAuthService)
	s.userService = new(MockUserService)
	s.tokenService = new(MockTokenService)
	s.cfg = testConfig()

	container := &portssvc.ServiceContainer{
		User:        s.userService,
		Token:       s.tokenService,
		GoogleOAuth: s.oauthService,
	}
	s.router = gin.New()
	registerGoogleOAuthRoutes(s.router.Group("/api"), s.cfg, container)
}

func (s *GoogleCallbackTestSuite) getCallback(state, code string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?state="+state+"&code="+code, nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "abc"})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *GoogleCallbackTestSuite) TestCallbackValidatesIDToken() {
	exchanged := (&oauth2.Token{AccessToken: "google-at"}).WithExtra(map[string]interface{}{"id_token": "google-idt"})
	payload := &idtoken.Payload{
		Subject: "google-sub-1",
		Claims:  map[string]interface{}{"email": "budi@example.com", "name": "Budi"},
	}
	user := &domain.User{ID: 7, Email: "budi@example.com", Name: "Budi", Role: domain.RoleUser}
	pair := &portssvc.TokenPair{AccessToken: "at", RefreshToken: "rt"}

	s.oauthService.On("ConsumeState", mock.Anything, "abc").Return(true).Once()
	s.oauthService.On("ExchangeCodeForToken", mock.Anything, "xyz").Return(exchanged, nil).Once()
	s.oauthService.On("ValidateGoogleIDToken", mock.Anything, "google-idt").Return(payload, nil).Once()
	s.userService.On("LoginWithGoogle", mock.Anything, "budi@example.com", "Budi").Return(user, nil).Once()
	s.tokenService.On("IssueTokenPair", mock.Anything, user).Return(pair, nil).Once()

	w := s.getCallback("abc", "xyz")

	s.Equal(http.StatusTemporaryRedirect, w.Code)
	s.Equal(s.cfg.FrontendBaseURL, w.Header().Get("Location"))
	s.oauthService.AssertExpectations(s.T())
	s.oauthService.AssertNotCalled(s.T(), "GetUserInfo", mock.Anything, mock.Anything)
}

func (s *GoogleCallbackTestSuite) TestCallbackRejectsInvalidIDToken() {
	exchanged := (&oauth2.Token{AccessToken: "google-at"}).WithExtra(map[string]interface{}{"id_token": "forged"})

	s.oauthService.On("ConsumeState", mock.Anything, "abc").Return(true).Once()
	s.oauthService.On("ExchangeCodeForToken", mock.Anything, "xyz").Return(exchanged, nil).Once()
	s.oauthService.On("ValidateGoogleIDToken", mock.Anything, "forged").
		Return(nil, errors.New("idtoken: signature verification failed")).Once()

	w := s.getCallback("abc", "xyz")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.userService.AssertNotCalled(s.T(), "LoginWithGoogle", mock.Anything, mock.Anything, mock.Anything)
	s.tokenService.AssertNotCalled(s.T(), "IssueTokenPair", mock.Anything, mock.Anything)
}

func (s *GoogleCallbackTestSuite) TestCallbackFallsBackToUserinfoWithoutIDToken() {
	exchanged := &oauth2.Token{AccessToken: "google-at"}
	user := &domain.User{ID: 7, Email: "budi@example.com", Name: "Budi", Role: domain.RoleUser}
	pair := &portssvc.TokenPair{AccessToken: "at", RefreshToken: "rt"}

	s.oauthService.On("ConsumeState", mock.Anything, "abc").Return(true).Once()
	s.oauthService.On("ExchangeCodeForToken", mock.Anything, "xyz").Return(exchanged, nil).Once()
	s.oauthService.On("GetUserInfo", mock.Anything, exchanged).
		Return(&domain.GoogleUserInfo{Email: "budi@example.com", Name: "Budi"}, nil).Once()
	s.userService.On("LoginWithGoogle", mock.Anything, "budi@example.com", "Budi").Return(user, nil).Once()
	s.tokenService.On("IssueTokenPair", mock.Anything, user).Return(pair, nil).Once()

	w := s.getCallback("abc", "xyz")

	s.Equal(http.StatusTemporaryRedirect, w.Code)
	s.oauthService.AssertExpectations(s.T())
	s.oauthService.AssertNotCalled(s.T(), "ValidateGoogleIDToken", mock.Anything, mock.Anything)
}

func (s *GoogleCallbackTestSuite) TestCallbackRejectsStateMismatch() {
	w := s.getCallback("evil", "xyz")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.oauthService.AssertNotCalled(s.T(), "ExchangeCodeForToken", mock.Anything, mock.Anything)
}

func TestGoogleCallbackTestSuite(t *testing.T) {
	suite.Run(t, new(GoogleCallbackTestSuite))
}
