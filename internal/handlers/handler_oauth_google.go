package handlers

import (
	"errors"
	"net/http"

	"github.com/dika1005/rodstore-backend/internal/core/domain"
	portssvc "github.com/dika1005/rodstore-backend/internal/core/ports/services"
	"github.com/dika1005/rodstore-backend/internal/dto"
	"github.com/dika1005/rodstore-backend/internal/middleware"
	"github.com/dika1005/rodstore-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

const oauthStateCookieName = "oauth_state"

var errMissingGoogleEmail = errors.New("google id token has no email claim")

// GoogleOAuthHandler handles the Google login flow.
type GoogleOAuthHandler struct {
	oauthService portssvc.GoogleOAuthHandlerSvcFacade
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		oauthService: services.GoogleOAuth,
		userService:  services.User,
		tokenService: services.Token,
		cfg:          cfg,
	}
}

func registerGoogleOAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services, cfg)

	auth := rg.Group("/auth")
	{
		auth.GET("/google", h.GoogleLogin)
		auth.GET("/google/callback", h.GoogleCallback)
	}
}

// GoogleLogin godoc
// @Summary Start Google login
// @Description Redirects to Google's consent page with a CSRF state.
// @Tags auth
// @Success 307
// @Router /auth/google [get]
func (h *GoogleOAuthHandler) GoogleLogin(c *gin.Context) {
	state, err := h.oauthService.GenerateStateString(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	// Ten minutes is plenty for the consent round-trip.
	c.SetCookie(oauthStateCookieName, state, 600, "/", "", h.cfg.SecureCookie, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthService.GetGoogleLoginURL(c.Request.Context(), state))
}

// GoogleCallback godoc
// @Summary Google login callback
// @Description Validates state, exchanges the code, upserts the user and issues tokens.
// @Tags auth
// @Success 307
// @Failure 401 {object} dto.ApiResponse
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) GoogleCallback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state := c.Query("state")
	cookieState, err := c.Cookie(oauthStateCookieName)
	if err != nil || state == "" || state != cookieState {
		logger.Warn("OAuth state mismatch")
		c.JSON(http.StatusUnauthorized, dto.Error("Token tidak valid"))
		return
	}
	c.SetCookie(oauthStateCookieName, "", -1, "/", "", h.cfg.SecureCookie, true)

	// Replay guard on top of the cookie comparison.
	if !h.oauthService.ConsumeState(c.Request.Context(), state) {
		logger.Warn("OAuth state replayed or unknown")
		c.JSON(http.StatusUnauthorized, dto.Error("Token tidak valid"))
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, dto.Error("Kode otorisasi tidak ditemukan"))
		return
	}

	oauthToken, err := h.oauthService.ExchangeCodeForToken(c.Request.Context(), code)
	if err != nil {
		logger.Error("OAuth code exchange failed", "error", err)
		c.JSON(http.StatusBadGateway, dto.Error("Tidak dapat terhubung ke Google."))
		return
	}

	userInfo, err := h.resolveGoogleUser(c, oauthToken)
	if err != nil {
		return
	}

	user, err := h.userService.LoginWithGoogle(c.Request.Context(), userInfo.Email, userInfo.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	pair, err := h.tokenService.IssueTokenPair(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(accessCookieName, pair.AccessToken, int(h.cfg.JWTExpiryDuration.Seconds()), "/", "", h.cfg.SecureCookie, true)
	c.SetCookie(refreshCookieName, pair.RefreshToken, int(h.cfg.RefreshTokenExpiryDuration.Seconds()), "/", "", h.cfg.SecureCookie, true)

	c.Redirect(http.StatusTemporaryRedirect, h.cfg.FrontendBaseURL)
}

// resolveGoogleUser extracts the user's identity from the token exchange. The
// id_token in Google's response is validated cryptographically and its claims
// used directly; only a response without one falls back to the userinfo
// endpoint. On failure the response has already been written.
func (h *GoogleOAuthHandler) resolveGoogleUser(c *gin.Context, oauthToken *oauth2.Token) (*domain.GoogleUserInfo, error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if idToken, ok := oauthToken.Extra("id_token").(string); ok && idToken != "" {
		payload, err := h.oauthService.ValidateGoogleIDToken(c.Request.Context(), idToken)
		if err != nil {
			logger.Warn("Google ID token rejected", "error", err)
			c.JSON(http.StatusUnauthorized, dto.Error("Token tidak valid"))
			return nil, err
		}

		email, _ := payload.Claims["email"].(string)
		name, _ := payload.Claims["name"].(string)
		if email == "" {
			logger.Error("Google ID token carries no email claim")
			c.JSON(http.StatusBadGateway, dto.Error("Tidak dapat terhubung ke Google."))
			return nil, errMissingGoogleEmail
		}
		return &domain.GoogleUserInfo{Email: email, Name: name}, nil
	}

	userInfo, err := h.oauthService.GetUserInfo(c.Request.Context(), oauthToken)
	if err != nil {
		logger.Error("Failed to fetch Google user info", "error", err)
		c.JSON(http.StatusBadGateway, dto.Error("Tidak dapat terhubung ke Google."))
		return nil, err
	}
	return userInfo, nil
}
