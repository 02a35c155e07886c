package services

import (
	"context"
	"encoding/json"

	"github.com/dika1005/rodstore-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CheckoutResult is what a successful checkout returns to the client.
type CheckoutResult struct {
	OrderID    int64
	Total      decimal.Decimal
	PaymentURL string
}

// PaymentOutcome reports what a payment-status update did.
type PaymentOutcome struct {
	// Processed is false when the order had already left PENDING.
	Processed bool
	// Paid is the direction of the transition when Processed is true.
	Paid bool
}

// OrderSvcFacade orchestrates checkout and payment-status reconciliation.
type OrderSvcFacade interface {
	// Checkout creates the order transactionally, then requests a payment
	// session from the gateway. The committed order survives gateway failure.
	Checkout(ctx context.Context, userID int64, shippingAddress string, paymentMethod string, items []domain.CheckoutItem) (*CheckoutResult, error)

	// ApplyGatewayNotification maps a gateway transaction status onto the
	// order and applies it idempotently. An already-terminal order is a no-op.
	ApplyGatewayNotification(ctx context.Context, orderID int64, transactionStatus string) (*PaymentOutcome, error)

	// SetPaymentStatus is the admin override. Unlike the webhook, an
	// already-terminal (or missing) order is an error here.
	SetPaymentStatus(ctx context.Context, orderID int64, success bool) (*PaymentOutcome, error)

	// LocalStatus returns the locally recorded order status without mutation.
	LocalStatus(ctx context.Context, orderID int64) (string, error)

	// GatewayStatus fetches the gateway's live view of a transaction. It never
	// mutates local state.
	GatewayStatus(ctx context.Context, orderID int64) (json.RawMessage, error)

	// ListOrders lists a user's own orders.
	ListOrders(ctx context.Context, userID int64) ([]domain.Order, error)
}
