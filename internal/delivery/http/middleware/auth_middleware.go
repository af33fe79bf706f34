package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-devconnect-backend/internal/delivery/http/response"
	"go-devconnect-backend/internal/domain"
	"go-devconnect-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and injects the caller's user id
// into the request context. Accepts either an Authorization: Bearer header
// or the legacy x-auth-token header.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			tokenString = c.GetHeader("x-auth-token")
		}

		if tokenString == "" {
			response.Msg(c, http.StatusUnauthorized, "No token, authorization denied")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			response.Msg(c, http.StatusUnauthorized, "Token is not valid")
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), userID)
		// Also propagate through the request context so usecases can read
		// the key from a plain context.Context.
		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
