package middleware

import (
	"errors"
	"net/http"

	"go-devconnect-backend/internal/delivery/http/response"
	"go-devconnect-backend/pkg/apperror"
	"go-devconnect-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
				if len(appErr.Fields) > 0 {
					response.Errors(c, appErr.Code, appErr.Fields)
				} else {
					response.Msg(c, appErr.Code, appErr.Message)
				}
				return
			}

			// Never expose internal error details to clients. Log server-side,
			// answer with the historical plain-text body.
			logger.Log.Error("Internal server error", "error", err, "path", c.Request.URL.Path)
			c.String(http.StatusInternalServerError, "Server Error")
		}
	}
}
