package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// authRequired gates protected routes. It extracts the bearer token,
// verifies it and attaches the subject's id and email to the request
// context for downstream handlers. It is a pure boundary filter: no
// persisted state is touched, the request either proceeds with identity
// attached or is rejected here.
func authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		claims, err := tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Next()
	}
}
