package services

import (
	"context"
	"errors"

	"github.com/dika1005/rodstore-backend/internal/apperrors"
	"github.com/dika1005/rodstore-backend/internal/core/domain"
	portsrepo "github.com/dika1005/rodstore-backend/internal/core/ports/repositories"
	portssvc "github.com/dika1005/rodstore-backend/internal/core/ports/services"
)

type productService struct {
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new instance of productService.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.FindProducts(ctx)
}

func (s *productService) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Produk tidak ditemukan")
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) error {
	if product.Name == "" {
		return apperrors.NewBadRequestError("Nama produk tidak boleh kosong")
	}
	if product.Price.IsNegative() {
		return apperrors.NewBadRequestError("Harga produk tidak valid")
	}
	return s.productRepo.CreateProduct(ctx, product)
}

func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if product.Name == "" {
		return apperrors.NewBadRequestError("Nama produk tidak boleh kosong")
	}
	if product.Price.IsNegative() {
		return apperrors.NewBadRequestError("Harga produk tidak valid")
	}
	err := s.productRepo.UpdateProduct(ctx, product)
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError("Produk tidak ditemukan")
	}
	return err
}

func (s *productService) DeleteProduct(ctx context.Context, productID int64) error {
	err := s.productRepo.DeleteProduct(ctx, productID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError("Produk tidak ditemukan")
	}
	return err
}

type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new instance of categoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.FindCategories(ctx)
}

func (s *categoryService) GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Kategori tidak ditemukan")
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, category *domain.Category) error {
	if category.Name == "" {
		return apperrors.NewBadRequestError("Nama kategori tidak boleh kosong")
	}
	return s.categoryRepo.CreateCategory(ctx, category)
}

func (s *categoryService) UpdateCategory(ctx context.Context, category *domain.Category) error {
	if category.Name == "" {
		return apperrors.NewBadRequestError("Nama kategori tidak boleh kosong")
	}
	err := s.categoryRepo.UpdateCategory(ctx, category)
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError("Kategori tidak ditemukan")
	}
	return err
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	err := s.categoryRepo.DeleteCategory(ctx, categoryID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError("Kategori tidak ditemukan")
	}
	return err
}
