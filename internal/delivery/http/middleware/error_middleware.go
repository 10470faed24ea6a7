package middleware

import (
	"errors"
	"net/http"

	"go-studio-backend/internal/delivery/http/response"
	"go-studio-backend/pkg/apperror"
	"go-studio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler drains errors attached to the gin context into the JSON
// envelope. Unknown errors are logged server-side and reported generically so
// internals never leak to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"code", appErr.Code,
					"error", appErr.Err.Error(),
					"path", c.FullPath(),
				)
			}
			response.Error(c, appErr.Status, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		logger.Log.Error("unhandled error", "error", err.Error(), "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, "", "An unexpected error occurred. Please try again later.", nil)
	}
}
