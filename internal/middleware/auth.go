package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"todopad/pkg/response"
)

const userIDKey = "auth.user_id"

// Auth validates the Bearer token and stores the caller's user id in the
// request context. HS256 only; the "user_id" claim is required.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer := c.GetHeader("Authorization")
		if !strings.HasPrefix(bearer, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		tokenStr := bearer[len("Bearer "):]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: invalid token: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user id stored by Auth.
func UserIDFromContext(c *gin.Context) string {
	return c.GetString(userIDKey)
}
