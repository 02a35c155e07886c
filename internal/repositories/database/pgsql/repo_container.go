package pgsql

import (
	portsrepo "github.com/dika1005/rodstore-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx-backed repositories over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(pool),
		RefreshTokenRepo: newPgxRefreshTokenRepository(pool),
		OrderRepo:        newPgxOrderRepository(pool),
		ProductRepo:      newPgxProductRepository(pool),
		CategoryRepo:     newPgxCategoryRepository(pool),
	}
}
