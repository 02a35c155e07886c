package handlers

import (
	"net/http"
	"strconv"

	"github.com/dika1005/rodstore-backend/internal/core/domain"
	portssvc "github.com/dika1005/rodstore-backend/internal/core/ports/services"
	"github.com/dika1005/rodstore-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// CategoryHandler serves catalog categories.
type CategoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func NewCategoryHandler(cs portssvc.CategorySvcFacade) *CategoryHandler {
	return &CategoryHandler{categoryService: cs}
}

func registerCategoryRoutes(public *gin.RouterGroup, admin *gin.RouterGroup, cs portssvc.CategorySvcFacade) {
	h := NewCategoryHandler(cs)

	public.GET("/categories", h.ListCategories)
	public.GET("/categories/:id", h.GetCategory)

	admin.POST("/categories", h.CreateCategory)
	admin.PUT("/categories/:id", h.UpdateCategory)
	admin.DELETE("/categories/:id", h.DeleteCategory)
}

// ListCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} dto.ApiResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Daftar kategori", categories))
}

// GetCategory godoc
// @Summary Get one category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.ApiResponse
// @Failure 404 {object} dto.ApiResponse
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.Error("ID kategori tidak valid"))
		return
	}
	category, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Kategori ditemukan", category))
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CategoryRequest true "Category"
// @Success 201 {object} dto.ApiResponse
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Data kategori tidak valid"))
		return
	}

	category := &domain.Category{Name: req.Name}
	if err := h.categoryService.CreateCategory(c.Request.Context(), category); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.Success("Kategori berhasil dibuat", category))
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body dto.CategoryRequest true "Category"
// @Success 200 {object} dto.ApiResponse
// @Failure 404 {object} dto.ApiResponse
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.Error("ID kategori tidak valid"))
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Data kategori tidak valid"))
		return
	}

	category := &domain.Category{ID: id, Name: req.Name}
	if err := h.categoryService.UpdateCategory(c.Request.Context(), category); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Kategori berhasil diperbarui", category))
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.ApiResponse
// @Failure 404 {object} dto.ApiResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.Error("ID kategori tidak valid"))
		return
	}
	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success("Kategori berhasil dihapus", nil))
}
