package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/sportsstore/config"
)

func validAPIKey(c *gin.Context, expected string) bool {
	apiKey := c.GetHeader("X-API-KEY")
	if expected == "" || apiKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) == 1
}

// AdminOnly lets a request through when it carries the admin API key in
// X-API-KEY or a bearer token signed with the admin secret and role=admin.
// With neither configured every request is refused.
func AdminOnly(cfg config.AdminConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if validAPIKey(c, cfg.APIKey) {
			c.Set("admin_via", "api_key")
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if cfg.JWTSecret != "" && strings.HasPrefix(header, "Bearer ") {
			claims, err := ParseAdminToken(strings.TrimPrefix(header, "Bearer "), cfg.JWTSecret)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
				c.Abort()
				return
			}
			c.Set("admin_via", "jwt")
			c.Set("user_id", claims.Subject)
			c.Next()
			return
		}

		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
		c.Abort()
	}
}
