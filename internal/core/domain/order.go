package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order lifecycle states. An order leaves PENDING exactly once.
const (
	OrderStatusPending = "PENDING"
	OrderStatusPaid    = "PAID"
	OrderStatusFailed  = "FAILED"
)

// Order is a checkout record. TotalAmount is computed server-side from the
// product table at checkout time and is the amount sent to the payment gateway.
type Order struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"userId"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	ShippingAddress string          `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	Status          string          `json:"status"`
	OrderDate       time.Time       `json:"orderDate"`
}

// OrderItem is a line of an order. PriceAtOrder snapshots the product price
// so later catalog edits do not change historical totals.
type OrderItem struct {
	ID           int64           `json:"id"`
	OrderID      int64           `json:"orderId"`
	ProductID    int64           `json:"productId"`
	Quantity     int             `json:"quantity"`
	PriceAtOrder decimal.Decimal `json:"priceAtOrder"`
}

// CheckoutItem is a requested order line before prices are resolved.
type CheckoutItem struct {
	ProductID int64
	Quantity  int
}
