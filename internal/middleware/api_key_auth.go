package middleware

import (
	"github.com/SscSPs/connec_payment_sync/internal/utils"
	"github.com/gin-gonic/gin"
)

const apiKeyHeader = "x-api-key"

// webhookCaller is the user id attributed to requests authenticated with the shared API key.
const webhookCaller = "webhook"

// APIKeyAuth authenticates requests carrying the shared webhook key in the x-api-key header.
// Requests without a key, or with a wrong one, continue unauthenticated so AuthMiddleware can try a JWT.
func APIKeyAuth(keyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(apiKeyHeader)
		if key == "" || keyHash == "" {
			c.Next()
			return
		}

		if !utils.CheckAPIKey(key, keyHash) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Invalid API key")
			c.Next()
			return
		}

		withUser(c, webhookCaller, authMethodAPIKey)
		c.Next()
	}
}
