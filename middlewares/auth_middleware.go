package middlewares

import (
	"net/http"
	"strings"

	"github.com/Rohit220707/FitTrack-pro/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer access token and attaches the caller's
// identity (userID, email, role) to the request context. No DB lookup: the
// token carries everything the handlers need.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ParseAccessToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireRole rejects callers whose token role doesn't match. Runs after
// AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
		c.Next()
	}
}
