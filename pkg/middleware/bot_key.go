package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireBotKey guards the bot callbacks with a shared bearer key.
// An empty key lets every request through.
func RequireBotKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}

		got, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":    "error",
				"error":     "Unauthorized",
				"requestID": c.GetString("requestID"),
			})
			return
		}

		c.Next()
	}
}
