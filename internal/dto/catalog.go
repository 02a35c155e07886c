package dto

import (
	"github.com/dika1005/rodstore-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductRequest creates or updates a catalog product.
type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	CategoryID  int64           `json:"category_id" binding:"required"`
	RodLength   string          `json:"rod_length"`
	LineWeight  string          `json:"line_weight"`
	CastWeight  string          `json:"cast_weight"`
	Action      string          `json:"action"`
	Material    string          `json:"material"`
	Power       string          `json:"power"`
	ReelSize    string          `json:"reel_size"`
	Price       decimal.Decimal `json:"price" binding:"required"`
}

// ToDomain maps the request to a domain product with the given id.
func (r *ProductRequest) ToDomain(id int64) *domain.Product {
	return &domain.Product{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		RodLength:   r.RodLength,
		LineWeight:  r.LineWeight,
		CastWeight:  r.CastWeight,
		Action:      r.Action,
		Material:    r.Material,
		Power:       r.Power,
		ReelSize:    r.ReelSize,
		Price:       r.Price,
	}
}

// CategoryRequest creates or updates a category.
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
