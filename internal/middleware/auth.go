package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sahanr/inkpot/internal/service"
	"github.com/sahanr/inkpot/internal/web"
)

var (
	errNotLoggedIn    = web.ApiError{Status: http.StatusUnauthorized, Msg: "not logged in"}
	errSessionExpired = web.ApiError{Status: http.StatusUnauthorized, Msg: "session expired, log in again"}
)

// Auth guards a route group with the bearer token issued by login.
func Auth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			web.AbortWithError(c, errNotLoggedIn)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			web.AbortWithError(c, errNotLoggedIn)
			return
		}

		role, err := auth.Verify(parts[1])
		if err != nil {
			web.AbortWithError(c, errSessionExpired)
			return
		}

		c.Set("role", role)
		c.Next()
	}
}
