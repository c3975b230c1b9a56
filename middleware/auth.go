package middleware

import (
	"strings"

	"backoffice-api/helper"
	"backoffice-api/services"

	"github.com/gin-gonic/gin"
)

// Authenticate resolves the bearer token into an actor and stores it in the
// request context. A request without an Authorization header passes through
// anonymously; the action wrapper decides whether that is acceptable. A
// present but invalid token is rejected here so clients can distinguish
// "log in again" from "no access".
func Authenticate(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			helper.AbortUnauthorized(c, "bearer token required")
			return
		}

		user, err := authService.Authenticate(tokenString)
		if err != nil {
			helper.AbortUnauthorized(c, err.Error())
			return
		}

		c.Set("actor", user.Actor())
		c.Next()
	}
}
