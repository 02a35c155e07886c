package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dika1005/rodstore-backend/internal/core/domain"
	portssvc "github.com/dika1005/rodstore-backend/internal/core/ports/services"
	"github.com/dika1005/rodstore-backend/internal/dto"
	"github.com/dika1005/rodstore-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles checkout, order reads and the payment entry points.
type OrderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func NewOrderHandler(os portssvc.OrderSvcFacade) *OrderHandler {
	return &OrderHandler{orderService: os}
}

func registerOrderRoutes(authed *gin.RouterGroup, admin *gin.RouterGroup, os portssvc.OrderSvcFacade) {
	h := NewOrderHandler(os)

	orders := authed.Group("/orders")
	{
		orders.POST("/checkout", h.Checkout)
		orders.GET("", h.ListOrders)
		orders.GET("/:id/status", h.OrderStatus)
		orders.GET("/:id/midtrans-status", h.GatewayStatus)
	}

	admin.PUT("/orders/:id/payment", h.AdminSetPayment)
}

// registerWebhookRoutes registers the public gateway-invoked endpoint.
func registerWebhookRoutes(rg *gin.RouterGroup, os portssvc.OrderSvcFacade) {
	h := NewOrderHandler(os)
	rg.POST("/webhook/payment", h.PaymentWebhook)
}

func parseOrderIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.Error("order_id tidak valid"))
		return 0, false
	}
	return id, true
}

// Checkout godoc
// @Summary Create an order and open a payment session
// @Tags orders
// @Accept json
// @Produce json
// @Param checkout body dto.CheckoutRequest true "Cart contents"
// @Success 201 {object} dto.ApiResponse
// @Failure 400 {object} dto.ApiResponse
// @Failure 502 {object} dto.ApiResponse
// @Router /orders/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("Token tidak ditemukan"))
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Data checkout tidak valid"))
		return
	}

	items := make([]domain.CheckoutItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.CheckoutItem{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	result, err := h.orderService.Checkout(c.Request.Context(), identity.UserID, req.ShippingAddress, req.PaymentMethod, items)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success("Checkout berhasil!", dto.CheckoutData{
		OrderID:    result.OrderID,
		Total:      result.Total,
		PaymentURL: result.PaymentURL,
	}))
}

// ListOrders godoc
// @Summary List own orders
// @Tags orders
// @Produce json
// @Success 200 {object} dto.ApiResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("Token tidak ditemukan"))
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("Daftar order", orders))
}

// OrderStatus godoc
// @Summary Locally recorded order status
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} dto.ApiResponse
// @Failure 404 {object} dto.ApiResponse
// @Router /orders/{id}/status [get]
func (h *OrderHandler) OrderStatus(c *gin.Context) {
	orderID, ok := parseOrderIDParam(c)
	if !ok {
		return
	}

	status, err := h.orderService.LocalStatus(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("Status order", dto.OrderStatusData{OrderID: orderID, Status: status}))
}

// GatewayStatus godoc
// @Summary Gateway's live view of a transaction
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} dto.ApiResponse
// @Failure 502 {object} dto.ApiResponse
// @Router /orders/{id}/midtrans-status [get]
func (h *OrderHandler) GatewayStatus(c *gin.Context) {
	orderID, ok := parseOrderIDParam(c)
	if !ok {
		return
	}

	raw, err := h.orderService.GatewayStatus(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("Status Midtrans", raw))
}

// AdminSetPayment godoc
// @Summary Manually set an order's payment outcome
// @Description Admin override; an already-processed order is reported as not found.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param payment body dto.AdminPaymentRequest true "PAID or FAILED"
// @Success 200 {object} dto.ApiResponse
// @Failure 400 {object} dto.ApiResponse
// @Failure 404 {object} dto.ApiResponse
// @Router /orders/{id}/payment [put]
func (h *OrderHandler) AdminSetPayment(c *gin.Context) {
	orderID, ok := parseOrderIDParam(c)
	if !ok {
		return
	}

	var req dto.AdminPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Status pembayaran tidak valid"))
		return
	}

	var success bool
	switch strings.ToUpper(req.Status) {
	case domain.OrderStatusPaid:
		success = true
	case domain.OrderStatusFailed:
		success = false
	default:
		c.JSON(http.StatusBadRequest, dto.Error("Status pembayaran tidak valid"))
		return
	}

	if _, err := h.orderService.SetPaymentStatus(c.Request.Context(), orderID, success); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("Status order berhasil diperbarui", nil))
}

// PaymentWebhook godoc
// @Summary Gateway payment notification
// @Description Public endpoint invoked by the gateway. Replays and unknown orders answer 200 so the gateway stops retrying.
// @Tags orders
// @Accept json
// @Produce json
// @Success 200 {object} dto.ApiResponse
// @Failure 400 {object} dto.ApiResponse
// @Router /webhook/payment [post]
func (h *OrderHandler) PaymentWebhook(c *gin.Context) {
	var notification dto.WebhookNotification
	if err := c.ShouldBindJSON(&notification); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("order_id tidak valid"))
		return
	}

	orderID, err := notification.ParseOrderID()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("order_id tidak valid"))
		return
	}

	outcome, err := h.orderService.ApplyGatewayNotification(c.Request.Context(), orderID, notification.TransactionStatus)
	if err != nil {
		respondError(c, err)
		return
	}

	if !outcome.Processed {
		c.JSON(http.StatusOK, dto.Success("Order sudah diproses.", nil))
		return
	}
	c.JSON(http.StatusOK, dto.Success("Status order berhasil diperbarui", nil))
}
