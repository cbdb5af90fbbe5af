package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pitchside/cricket-slot-booking-backend/auth"
)

// AuthRequired resolves the bearer token to a verified user and stores it in
// the request context under "user".
func AuthRequired(service AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)

		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		user, err := service.Authenticate(c.Request.Context(), token)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("token", token)
	}
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(auth.User)

		if !user.Admin {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")

	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}

	token := strings.TrimPrefix(header, "Bearer ")

	return token, len(token) != 0
}
