package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated caller's ID.
const userIDKey = contextKey("userID")

// authMethodKey records which middleware authenticated the request.
const authMethodKey = "authMethod"

const (
	authMethodAPIKey = "api_key"
	authMethodJWT    = "jwt"
)

// withUser stores the caller id in both the Gin context and the request context,
// and enriches the request logger with it.
func withUser(c *gin.Context, userID, method string) {
	c.Set(string(userIDKey), userID)
	c.Set(authMethodKey, method)

	ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
	logger := GetLoggerFromCtx(ctx).With("user_id", userID, "auth_method", method)
	c.Request = c.Request.WithContext(WithLogger(ctx, logger))
}

// GetUserIDFromContext retrieves the authenticated caller ID from the Gin context.
// It returns the ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if userID, ok := c.Request.Context().Value(userIDKey).(string); ok {
			return userID, true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}
