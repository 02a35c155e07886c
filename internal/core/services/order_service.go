package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/dika1005/rodstore-backend/internal/apperrors"
	"github.com/dika1005/rodstore-backend/internal/core/domain"
	portsrepo "github.com/dika1005/rodstore-backend/internal/core/ports/repositories"
	portssvc "github.com/dika1005/rodstore-backend/internal/core/ports/services"
	"github.com/dika1005/rodstore-backend/internal/gateway/midtrans"
	"github.com/dika1005/rodstore-backend/internal/middleware"
	"github.com/dika1005/rodstore-backend/internal/platform/events"
	"github.com/shopspring/decimal"
)

// PaymentGateway is the slice of the gateway client the order service needs.
type PaymentGateway interface {
	CreateTransaction(ctx context.Context, orderID string, grossAmount decimal.Decimal, customerName string, customerEmail string) (*midtrans.SnapResponse, error)
	TransactionStatus(ctx context.Context, orderID string) (json.RawMessage, error)
}

type orderService struct {
	orderRepo portsrepo.OrderRepositoryFacade
	userRepo  portsrepo.UserReader
	gateway   PaymentGateway
	publisher events.Publisher
}

// NewOrderService creates a new instance of orderService.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, userRepo portsrepo.UserReader, gateway PaymentGateway, publisher events.Publisher) portssvc.OrderSvcFacade {
	return &orderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		gateway:   gateway,
		publisher: publisher,
	}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// Checkout commits the order first and only then talks to the gateway. A
// gateway failure surfaces as 502 but never rolls back the committed order;
// the local row is the source of truth and payment can be retried against it.
func (s *orderService) Checkout(ctx context.Context, userID int64, shippingAddress string, paymentMethod string, items []domain.CheckoutItem) (*portssvc.CheckoutResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(items) == 0 {
		return nil, apperrors.NewBadRequestError("Keranjang tidak boleh kosong")
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, apperrors.NewBadRequestError("Jumlah produk tidak valid")
		}
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Token tidak valid")
		}
		return nil, apperrors.NewInternalServerError("Terjadi kesalahan internal pada server.")
	}

	orderID, total, err := s.orderRepo.CreateOrder(ctx, userID, shippingAddress, paymentMethod, items)
	if err != nil {
		return nil, err
	}

	snap, err := s.gateway.CreateTransaction(ctx, strconv.FormatInt(orderID, 10), total, user.Name, user.Email)
	if err != nil {
		logger.Error("Gateway transaction failed after order commit", "order_id", orderID, "error", err)
		var gwErr *midtrans.GatewayError
		if errors.As(err, &gwErr) {
			return nil, apperrors.NewBadGatewayError("Midtrans menolak transaksi: " + gwErr.Body)
		}
		return nil, apperrors.NewBadGatewayError("Tidak dapat terhubung ke Midtrans.")
	}

	return &portssvc.CheckoutResult{
		OrderID:    orderID,
		Total:      total,
		PaymentURL: snap.RedirectURL,
	}, nil
}

// successStatuses are the gateway transaction states that settle an order.
func isSuccessStatus(transactionStatus string) bool {
	return transactionStatus == "settlement" || transactionStatus == "capture"
}

func (s *orderService) publishOutcome(ctx context.Context, orderID int64, paid bool) {
	routingKey := events.OrderFailed
	status := domain.OrderStatusFailed
	if paid {
		routingKey = events.OrderPaid
		status = domain.OrderStatusPaid
	}
	event := events.OrderEvent{OrderID: orderID, Status: status, OccurredAt: time.Now()}
	if err := s.publisher.Publish(ctx, routingKey, event); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to publish order event", "order_id", orderID, "error", err)
	}
}

// ApplyGatewayNotification applies a webhook status. The PENDING-only update
// makes replays no-ops, so duplicate notifications are harmless.
func (s *orderService) ApplyGatewayNotification(ctx context.Context, orderID int64, transactionStatus string) (*portssvc.PaymentOutcome, error) {
	paid := isSuccessStatus(transactionStatus)

	rows, err := s.orderRepo.ProcessPayment(ctx, orderID, paid)
	if err != nil {
		return nil, apperrors.NewInternalServerError("Terjadi kesalahan internal pada server.")
	}
	if rows == 0 {
		return &portssvc.PaymentOutcome{Processed: false}, nil
	}

	s.publishOutcome(ctx, orderID, paid)
	return &portssvc.PaymentOutcome{Processed: true, Paid: paid}, nil
}

// SetPaymentStatus is the admin override. Where the webhook tolerates an
// already-terminal order, the admin endpoint reports it as not found.
func (s *orderService) SetPaymentStatus(ctx context.Context, orderID int64, success bool) (*portssvc.PaymentOutcome, error) {
	rows, err := s.orderRepo.ProcessPayment(ctx, orderID, success)
	if err != nil {
		return nil, apperrors.NewInternalServerError("Terjadi kesalahan internal pada server.")
	}
	if rows == 0 {
		return nil, apperrors.NewNotFoundError("Order tidak ditemukan atau sudah diproses.")
	}

	s.publishOutcome(ctx, orderID, success)
	return &portssvc.PaymentOutcome{Processed: true, Paid: success}, nil
}

func (s *orderService) LocalStatus(ctx context.Context, orderID int64) (string, error) {
	status, err := s.orderRepo.FindStatusByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewNotFoundError("Order tidak ditemukan")
		}
		return "", apperrors.NewInternalServerError("Terjadi kesalahan internal pada server.")
	}
	return status, nil
}

func (s *orderService) GatewayStatus(ctx context.Context, orderID int64) (json.RawMessage, error) {
	raw, err := s.gateway.TransactionStatus(ctx, strconv.FormatInt(orderID, 10))
	if err != nil {
		var gwErr *midtrans.GatewayError
		if errors.As(err, &gwErr) {
			return nil, apperrors.NewBadGatewayError("Midtrans menolak permintaan: " + gwErr.Body)
		}
		return nil, apperrors.NewBadGatewayError("Tidak dapat terhubung ke Midtrans.")
	}
	return raw, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindOrdersByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewInternalServerError("Terjadi kesalahan internal pada server.")
	}
	return orders, nil
}
