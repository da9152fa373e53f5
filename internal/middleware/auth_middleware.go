package middleware

import (
	"strings"

	"fitlife-service/internal/pkg/jwt"
	"fitlife-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// AuthMiddleware rejects requests without a valid bearer token. A missing
// token yields 401, a malformed or expired one yields 403.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "No token provided")
			return
		}

		claims, err := verifier.ValidateToken(token)
		if err != nil {
			response.Forbidden(c, "Invalid token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// AdminOnly requires the authenticated user to carry the admin role. It
// must run after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextRole)
		if role != "admin" {
			response.Forbidden(c, "Admin access required")
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	// Websocket clients cannot set headers, so the token may also arrive
	// as a query parameter.
	return c.Query("token")
}

// UserIDFromContext reads the authenticated user's ID set by
// AuthMiddleware.
func UserIDFromContext(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
