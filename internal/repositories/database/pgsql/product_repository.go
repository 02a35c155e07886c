package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dika1005/rodstore-backend/internal/apperrors"
	"github.com/dika1005/rodstore-backend/internal/core/domain"
	portsrepo "github.com/dika1005/rodstore-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductRepository struct {
	db *pgxpool.Pool
}

func newPgxProductRepository(db *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{db: db}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `id, name, description, category_id, rod_length, line_weight, cast_weight, action, material, power, reel_size, price`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.CategoryID,
		&p.RodLength, &p.LineWeight, &p.CastWeight, &p.Action,
		&p.Material, &p.Power, &p.ReelSize, &p.Price,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}
	return &p, nil
}

func (r *PgxProductRepository) FindProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating products: %w", err)
	}
	return products, nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	return scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, productID))
}

func (r *PgxProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (name, description, category_id, rod_length, line_weight, cast_weight, action, material, power, reel_size, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		product.Name, product.Description, product.CategoryID,
		product.RodLength, product.LineWeight, product.CastWeight, product.Action,
		product.Material, product.Power, product.ReelSize, product.Price,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, category_id = $3, rod_length = $4, line_weight = $5,
			cast_weight = $6, action = $7, material = $8, power = $9, reel_size = $10, price = $11
		WHERE id = $12;
	`
	tag, err := r.db.Exec(ctx, query,
		product.Name, product.Description, product.CategoryID,
		product.RodLength, product.LineWeight, product.CastWeight, product.Action,
		product.Material, product.Power, product.ReelSize, product.Price,
		product.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
