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
	"github.com/shopspring/decimal"
)

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

// CreateOrder inserts the order and its items in one transaction. Prices come
// from the products table at this moment, never from the client; any unknown
// product id aborts the whole transaction.
func (r *PgxOrderRepository) CreateOrder(ctx context.Context, userID int64, shippingAddress string, paymentMethod string, items []domain.CheckoutItem) (int64, decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, decimal.Zero, err
	}
	defer r.Rollback(ctx, tx)

	// 1. Resolve current price per line.
	prices := make([]decimal.Decimal, len(items))
	total := decimal.Zero
	for i, item := range items {
		var price decimal.Decimal
		err := tx.QueryRow(ctx, `SELECT price FROM products WHERE id = $1`, item.ProductID).Scan(&price)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return 0, decimal.Zero, apperrors.NewBadRequestError("Gagal checkout. Salah satu produk tidak valid.")
			}
			return 0, decimal.Zero, fmt.Errorf("failed to resolve price for product %d: %w", item.ProductID, err)
		}
		prices[i] = price
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	// 2. Insert the order header.
	var orderID int64
	orderQuery := `
		INSERT INTO orders (user_id, total_amount, shipping_address, payment_method, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, orderQuery, userID, total, shippingAddress, paymentMethod, domain.OrderStatusPending).Scan(&orderID)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("failed to insert order: %w", err)
	}

	// 3. Batch-insert the items with their price snapshots.
	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, price_at_order)
		VALUES ($1, $2, $3, $4);
	`
	for i, item := range items {
		batch.Queue(itemQuery, orderID, item.ProductID, item.Quantity, prices[i])
	}
	br := tx.SendBatch(ctx, batch)
	for range items {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return 0, decimal.Zero, fmt.Errorf("failed to insert order item: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return 0, decimal.Zero, fmt.Errorf("failed to close order item batch: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, decimal.Zero, err
	}
	return orderID, total, nil
}

// ProcessPayment is the single state transition of an order. The
// status='PENDING' condition is the idempotence guard: concurrent webhook and
// admin calls race on this row and exactly one of them affects it.
func (r *PgxOrderRepository) ProcessPayment(ctx context.Context, orderID int64, success bool) (int64, error) {
	status := domain.OrderStatusFailed
	if success {
		status = domain.OrderStatusPaid
	}
	tag, err := r.Pool.Exec(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2 AND status = $3`,
		status, orderID, domain.OrderStatusPending,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to process payment for order %d: %w", orderID, err)
	}
	return tag.RowsAffected(), nil
}

func (r *PgxOrderRepository) FindStatusByID(ctx context.Context, orderID int64) (string, error) {
	var status string
	err := r.Pool.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1`, orderID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to find order %d: %w", orderID, err)
	}
	return status, nil
}

func (r *PgxOrderRepository) FindOrdersByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	query := `
		SELECT id, user_id, total_amount, shipping_address, payment_method, status, order_date
		FROM orders
		WHERE user_id = $1
		ORDER BY order_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for user %d: %w", userID, err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.ShippingAddress, &o.PaymentMethod, &o.Status, &o.OrderDate); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating orders: %w", err)
	}
	return orders, nil
}
