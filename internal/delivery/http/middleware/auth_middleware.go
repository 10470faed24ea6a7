package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"go-studio-backend/internal/delivery/http/response"
	"go-studio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AdminAuthMiddleware guards the admin surface with an HS256 bearer token
// signed with the shared admin secret. Deployments without a secret reject
// every admin request.
func AdminAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			response.Error(c, http.StatusServiceUnavailable, apperror.CodeConfiguration,
				"Admin API not configured", nil)
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "", "Missing or malformed authorization header", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "", "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
