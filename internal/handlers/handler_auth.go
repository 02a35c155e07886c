package handlers

import (
	"net/http"
	"strconv"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/dika1005/rodstore-backend/internal/core/ports/services"
	"github.com/dika1005/rodstore-backend/internal/dto"
	"github.com/dika1005/rodstore-backend/internal/middleware"
	"github.com/dika1005/rodstore-backend/internal/platform/config"
	"github.com/dika1005/rodstore-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// parseIdentity extracts the numeric user id from an access token, if valid.
func parseIdentity(tokenString string, secret string) (int64, bool) {
	claims, err := utils.ParseAccessToken(tokenString, secret)
	if err != nil {
		return 0, false
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, false
	}
	return userID, true
}

const (
	accessCookieName  = "jwt"
	refreshCookieName = "refresh_token"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{userService: us, tokenService: ts, cfg: cfg}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Token, cfg)

	// 5 attempts per minute per IP on the credential endpoints.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	limitMiddleware := middleware.RateLimit(limiter.New(store, rate))

	auth := rg.Group("/auth")
	{
		auth.POST("/register", limitMiddleware, h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
		auth.POST("/update-role/:email", middleware.Authenticated(cfg.JWTSecret), middleware.AdminOnly(), h.UpdateRole)
	}
}

// setAuthCookies sets the jwt and refresh_token cookies for an issued pair.
func (h *AuthHandler) setAuthCookies(c *gin.Context, pair *portssvc.TokenPair) {
	c.SetCookie(accessCookieName, pair.AccessToken, int(h.cfg.JWTExpiryDuration.Seconds()), "/", "", h.cfg.SecureCookie, true)
	c.SetCookie(refreshCookieName, pair.RefreshToken, int(h.cfg.RefreshTokenExpiryDuration.Seconds()), "/", "", h.cfg.SecureCookie, true)
}

// clearAuthCookies expires both auth cookies.
func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	c.SetCookie(accessCookieName, "", -1, "/", "", h.cfg.SecureCookie, true)
	c.SetCookie(refreshCookieName, "", -1, "/", "", h.cfg.SecureCookie, true)
}

// Register godoc
// @Summary Register new user
// @Description Creates a new password-based account.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.ApiResponse
// @Failure 400 {object} dto.ApiResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Data registrasi tidak valid"))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success("Registrasi berhasil!", dto.ToUserResponse(user)))
}

// Login godoc
// @Summary User login
// @Description Verifies credentials, sets jwt and refresh_token cookies and returns the pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.ApiResponse
// @Failure 401 {object} dto.ApiResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Data login tidak valid"))
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	pair, err := h.tokenService.IssueTokenPair(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAuthCookies(c, pair)
	c.JSON(http.StatusOK, dto.Success("Login berhasil!", dto.LoginData{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.ToUserResponse(user),
	}))
}

// Refresh godoc
// @Summary Rotate refresh token
// @Description Exchanges a live refresh token (cookie or body) for a new token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} dto.ApiResponse
// @Failure 401 {object} dto.ApiResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil || refreshToken == "" {
		var req dto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		c.JSON(http.StatusUnauthorized, dto.Error("Token tidak ditemukan"))
		return
	}

	user, pair, err := h.tokenService.Rotate(c.Request.Context(), refreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAuthCookies(c, pair)
	c.JSON(http.StatusOK, dto.Success("Token diperbarui", dto.LoginData{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.ToUserResponse(user),
	}))
}

// Logout godoc
// @Summary Logout
// @Description Revokes all refresh tokens of the caller (when identifiable) and clears cookies.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.ApiResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Logout works even with an expired access token: clearing cookies must
	// always succeed. The presented refresh token is revoked directly; the
	// blanket revocation below additionally needs a parseable access token.
	if refreshToken, err := c.Cookie(refreshCookieName); err == nil && refreshToken != "" {
		if err := h.tokenService.RevokeRefreshToken(c.Request.Context(), refreshToken); err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to revoke presented refresh token on logout", "error", err)
		}
	}

	if tokenString, found := middleware.ExtractToken(c); found {
		if identity, ok := parseIdentity(tokenString, h.cfg.JWTSecret); ok {
			if err := h.tokenService.RevokeAllForUser(c.Request.Context(), identity); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to revoke refresh tokens on logout", "error", err)
			}
		}
	}

	h.clearAuthCookies(c)
	c.JSON(http.StatusOK, dto.Success("Logout berhasil!", nil))
}

// UpdateRole godoc
// @Summary Change a user's role
// @Description Admin-only role assignment by email.
// @Tags auth
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Param role body dto.UpdateRoleRequest true "New role"
// @Success 200 {object} dto.ApiResponse
// @Failure 400 {object} dto.ApiResponse
// @Failure 403 {object} dto.ApiResponse
// @Failure 404 {object} dto.ApiResponse
// @Router /auth/update-role/{email} [post]
func (h *AuthHandler) UpdateRole(c *gin.Context) {
	email := c.Param("email")

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Role tidak valid"))
		return
	}

	if err := h.userService.UpdateRole(c.Request.Context(), email, req.Role); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("Role berhasil diperbarui", nil))
}
