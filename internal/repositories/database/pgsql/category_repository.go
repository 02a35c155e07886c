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

type PgxCategoryRepository struct {
	db *pgxpool.Pool
}

func newPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{db: db}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating categories: %w", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	var c domain.Category
	err := r.db.QueryRow(ctx, `SELECT id, name FROM categories WHERE id = $1`, categoryID).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %d: %w", categoryID, err)
	}
	return &c, nil
}

func (r *PgxCategoryRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	err := r.db.QueryRow(ctx, `INSERT INTO categories (name) VALUES ($1) RETURNING id`, category.Name).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category *domain.Category) error {
	tag, err := r.db.Exec(ctx, `UPDATE categories SET name = $1 WHERE id = $2`, category.Name, category.ID)
	if err != nil {
		return fmt.Errorf("failed to update category %d: %w", category.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %d: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
