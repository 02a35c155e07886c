package services

import (
	"context"

	"github.com/dika1005/rodstore-backend/internal/core/domain"
)

// ProductSvcFacade defines catalog operations for products.
type ProductSvcFacade interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, productID int64) error
}

// CategorySvcFacade defines catalog operations for categories.
type CategorySvcFacade interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, categoryID int64) error
}
