package repositories

import (
	"context"

	"github.com/dika1005/rodstore-backend/internal/core/domain"
)

// ProductRepositoryFacade defines catalog persistence for products.
type ProductRepositoryFacade interface {
	FindProducts(ctx context.Context) ([]domain.Product, error)
	FindProductByID(ctx context.Context, productID int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, productID int64) error
}

// CategoryRepositoryFacade defines catalog persistence for categories.
type CategoryRepositoryFacade interface {
	FindCategories(ctx context.Context) ([]domain.Category, error)
	FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, categoryID int64) error
}
