package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dika1005/rodstore-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

const accessTokenCookieName = "jwt"

// ExtractToken finds the access token for a request. The jwt cookie wins;
// the Authorization header (with or without a Bearer prefix) is the fallback.
// This one function is the only extraction path, so every guarded route has
// the same precedence.
func ExtractToken(c *gin.Context) (string, bool) {
	if cookie, err := c.Cookie(accessTokenCookieName); err == nil && cookie != "" {
		return cookie, true
	}
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", false
	}
	return token, true
}

// Authenticated validates the access token and stores the caller's identity
// in the request context. It never refreshes or mutates anything.
func Authenticated(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, found := ExtractToken(c)
		if !found {
			logger.Warn("Access token missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Token tidak ditemukan",
			})
			return
		}

		claims, err := utils.ParseAccessToken(tokenString, jwtSecret)
		if err != nil {
			logger.Warn("Invalid access token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Token tidak valid",
			})
			return
		}

		userID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			logger.Warn("Access token subject is not a user id", "subject", claims.Subject)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Token tidak valid",
			})
			return
		}

		identity := Identity{UserID: userID, Role: claims.Role}

		ctx := context.WithValue(c.Request.Context(), identityCtxKey, identity)
		enrichedLogger := logger.With(slog.Int64("user_id", userID), slog.String("role", identity.Role))
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// AdminOnly rejects callers whose role is not admin. It must be registered
// after Authenticated; an absent identity is treated as unauthenticated
// rather than forbidden.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, found := GetIdentityFromContext(c)
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Token tidak ditemukan",
			})
			return
		}
		if identity.Role != "admin" {
			GetLoggerFromCtx(c.Request.Context()).Warn("Admin route denied", "role", identity.Role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Akses ditolak: hanya administrator yang diizinkan.",
			})
			return
		}
		c.Next()
	}
}
