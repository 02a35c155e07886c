package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dika1005/rodstore-backend/internal/apperrors"
	"github.com/dika1005/rodstore-backend/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if categories, ok := args.Get(0).([]domain.Category); ok {
		return categories, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryService) GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if category, ok := args.Get(0).(*domain.Category); ok {
		return category, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

type CategoryHandlerTestSuite struct {
	suite.Suite
	categoryService *MockCategoryService
	router          *gin.Engine
}

func (s *CategoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.categoryService = new(MockCategoryService)
	s.router = gin.New()
	registerCategoryRoutes(s.router.Group("/api"), s.router.Group("/api"), s.categoryService)
}

func (s *CategoryHandlerTestSuite) getCategory(id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/categories/"+id, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *CategoryHandlerTestSuite) TestGetCategoryFound() {
	s.categoryService.On("GetCategory", mock.Anything, int64(3)).
		Return(&domain.Category{ID: 3, Name: "Spinning"}, nil).Once()

	w := s.getCategory("3")

	s.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	s.Equal("Spinning", data["name"])
}

func (s *CategoryHandlerTestSuite) TestGetCategoryNotFound() {
	s.categoryService.On("GetCategory", mock.Anything, int64(99)).
		Return(nil, apperrors.NewNotFoundError("Kategori tidak ditemukan")).Once()

	w := s.getCategory("99")

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *CategoryHandlerTestSuite) TestGetCategoryInvalidID() {
	w := s.getCategory("abc")

	s.Equal(http.StatusBadRequest, w.Code)
	s.categoryService.AssertNotCalled(s.T(), "GetCategory", mock.Anything, mock.Anything)
}

func TestCategoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}
