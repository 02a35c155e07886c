package dto

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CheckoutItemRequest is one requested order line.
type CheckoutItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

// CheckoutRequest is the checkout payload. Prices are intentionally absent;
// the server resolves them from the catalog.
type CheckoutRequest struct {
	ShippingAddress string                `json:"shipping_address" binding:"required"`
	PaymentMethod   string                `json:"payment_method" binding:"required"`
	Items           []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CheckoutData is the data section of a successful checkout.
type CheckoutData struct {
	OrderID    int64           `json:"order_id"`
	Total      decimal.Decimal `json:"total"`
	PaymentURL string          `json:"payment_url"`
}

// FlexOrderID accepts the order id as either a JSON string or number, the two
// shapes gateways actually send.
type FlexOrderID int64

var errInvalidOrderID = errors.New("invalid order id")

func (f *FlexOrderID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return errInvalidOrderID
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return errInvalidOrderID
	}
	*f = FlexOrderID(id)
	return nil
}

func (f FlexOrderID) Int64() int64 { return int64(f) }

// WebhookNotification is the payment notification pushed by the gateway.
type WebhookNotification struct {
	OrderID           json.RawMessage `json:"order_id"`
	TransactionStatus string          `json:"transaction_status"`
}

// ParseOrderID extracts the numeric order id from the raw field, rejecting
// anything that is not a positive integer.
func (w *WebhookNotification) ParseOrderID() (int64, error) {
	var flex FlexOrderID
	if len(w.OrderID) == 0 {
		return 0, errInvalidOrderID
	}
	if err := flex.UnmarshalJSON(w.OrderID); err != nil {
		return 0, err
	}
	if flex.Int64() <= 0 {
		return 0, errInvalidOrderID
	}
	return flex.Int64(), nil
}

// AdminPaymentRequest is the admin override for an order's payment status.
type AdminPaymentRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderStatusData is the data section of a local status read.
type OrderStatusData struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}
