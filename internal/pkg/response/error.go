package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arenaduna/booking-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a JSON error response. AppError values carry their own status
// code and user-facing message; anything else is replaced by a generic 500 so
// internal detail never leaks. The wrapped cause is logged for operators.
func Error(c *gin.Context, logger *zap.Logger, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil && logger != nil {
			logger.Warn("request failed",
				zap.String("path", c.FullPath()),
				zap.Int("status", appErr.Code),
				zap.Error(appErr.Err),
			)
		}
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	if logger != nil {
		logger.Error("unhandled error",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
