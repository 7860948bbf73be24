package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminPasswordHeader carries the admin password on every /api request.
const AdminPasswordHeader = "X-Admin-Password"

// AdminAuth checks the admin password against a bcrypt hash.
// An empty hash disables the check.
func AdminAuth(passwordHash string, logger *zap.Logger) gin.HandlerFunc {
	if passwordHash == "" {
		logger.Warn("Admin password hash not configured, API is open")
		return func(c *gin.Context) {
			c.Next()
		}
	}

	hash := []byte(passwordHash)
	return func(c *gin.Context) {
		password := c.GetHeader(AdminPasswordHeader)
		if password == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
			logger.Warn("Invalid admin password",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}
