package repositories

import (
	"context"

	"github.com/dika1005/rodstore-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderWriter defines the mutating order operations.
type OrderWriter interface {
	// CreateOrder resolves current prices for every requested item, computes
	// the total, and inserts the order plus its items in one transaction.
	// Any unknown product id fails the whole operation with a validation
	// error and nothing is committed.
	CreateOrder(ctx context.Context, userID int64, shippingAddress string, paymentMethod string, items []domain.CheckoutItem) (orderID int64, total decimal.Decimal, err error)

	// ProcessPayment moves an order out of PENDING. The WHERE status='PENDING'
	// condition makes the call idempotent: it returns the number of rows
	// affected, 0 meaning the order was already terminal (or absent).
	ProcessPayment(ctx context.Context, orderID int64, success bool) (int64, error)
}

// OrderReader defines the read-only order operations.
type OrderReader interface {
	// FindStatusByID returns the locally recorded status of an order.
	FindStatusByID(ctx context.Context, orderID int64) (string, error)

	// FindOrdersByUser lists a user's orders, newest first.
	FindOrdersByUser(ctx context.Context, userID int64) ([]domain.Order, error)
}

// OrderRepositoryFacade combines order reads and writes.
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
