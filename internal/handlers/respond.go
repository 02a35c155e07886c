package handlers

import (
	"errors"
	"net/http"

	"github.com/dika1005/rodstore-backend/internal/apperrors"
	"github.com/dika1005/rodstore-backend/internal/dto"
	"github.com/dika1005/rodstore-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the response envelope. AppError
// carries its own status code and user-facing message; anything else is a
// masked 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, dto.Error(appErr.Message))
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled error", "error", err)
	c.JSON(http.StatusInternalServerError, dto.Error("Terjadi kesalahan internal pada server."))
}
