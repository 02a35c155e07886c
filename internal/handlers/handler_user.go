package handlers

import (
	"net/http"

	portssvc "github.com/dika1005/rodstore-backend/internal/core/ports/services"
	"github.com/dika1005/rodstore-backend/internal/dto"
	"github.com/dika1005/rodstore-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler serves the caller's own profile.
type UserHandler struct {
	userService portssvc.UserSvcFacade
}

func NewUserHandler(us portssvc.UserSvcFacade) *UserHandler {
	return &UserHandler{userService: us}
}

func registerUserRoutes(rg *gin.RouterGroup, us portssvc.UserSvcFacade) {
	h := NewUserHandler(us)

	user := rg.Group("/user")
	{
		user.GET("/profile", h.Profile)
		user.PUT("/profile", h.UpdateProfile)
	}
}

// Profile godoc
// @Summary Get own profile
// @Tags user
// @Produce json
// @Success 200 {object} dto.ApiResponse
// @Failure 401 {object} dto.ApiResponse
// @Router /user/profile [get]
func (h *UserHandler) Profile(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("Token tidak ditemukan"))
		return
	}

	user, err := h.userService.Profile(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("Profil ditemukan", dto.ToUserResponse(user)))
}

// UpdateProfile godoc
// @Summary Update own profile
// @Tags user
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.ApiResponse
// @Failure 400 {object} dto.ApiResponse
// @Router /user/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("Token tidak ditemukan"))
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Data profil tidak valid"))
		return
	}

	if err := h.userService.UpdateProfile(c.Request.Context(), identity.UserID, req.Name, req.Address); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("Profil berhasil diperbarui", nil))
}
