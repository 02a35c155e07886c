package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/dika1005/rodstore-backend/internal/core/ports/services"
	"github.com/dika1005/rodstore-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// ProductHandler serves the rod catalog.
type ProductHandler struct {
	productService portssvc.ProductSvcFacade
}

func NewProductHandler(ps portssvc.ProductSvcFacade) *ProductHandler {
	return &ProductHandler{productService: ps}
}

// registerProductRoutes wires public reads and admin-gated mutations.
func registerProductRoutes(public *gin.RouterGroup, admin *gin.RouterGroup, ps portssvc.ProductSvcFacade) {
	h := NewProductHandler(ps)

	public.GET("/products", h.ListProducts)
	public.GET("/products/:id", h.GetProduct)

	admin.POST("/products", h.CreateProduct)
	admin.PUT("/products/:id", h.UpdateProduct)
	admin.DELETE("/products/:id", h.DeleteProduct)
}

func parseProductIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.Error("ID produk tidak valid"))
		return 0, false
	}
	return id, true
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {object} dto.ApiResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Daftar produk", products))
}

// GetProduct godoc
// @Summary Get one product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.ApiResponse
// @Failure 404 {object} dto.ApiResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseProductIDParam(c)
	if !ok {
		return
	}
	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Produk ditemukan", product))
}

// CreateProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.ProductRequest true "Product"
// @Success 201 {object} dto.ApiResponse
// @Failure 400 {object} dto.ApiResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Data produk tidak valid"))
		return
	}

	product := req.ToDomain(0)
	if err := h.productService.CreateProduct(c.Request.Context(), product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Success("Produk berhasil dibuat", product))
}

// UpdateProduct godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body dto.ProductRequest true "Product"
// @Success 200 {object} dto.ApiResponse
// @Failure 404 {object} dto.ApiResponse
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseProductIDParam(c)
	if !ok {
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Data produk tidak valid"))
		return
	}

	product := req.ToDomain(id)
	if err := h.productService.UpdateProduct(c.Request.Context(), product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Produk berhasil diperbarui", product))
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.ApiResponse
// @Failure 404 {object} dto.ApiResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseProductIDParam(c)
	if !ok {
		return
	}
	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Produk berhasil dihapus", nil))
}
