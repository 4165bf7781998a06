package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/minseoh/task-tracker/pkg/helpers"
	"github.com/minseoh/task-tracker/pkg/response"
)

const (
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "username"
)

// Auth validates the bearer token of the Authorization header and exposes
// the decoded identity claim to downstream handlers. It trusts the
// signature alone and never consults the store, so outstanding tokens stay
// valid until they expire.
func Auth(tokens *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing authorization header", nil)
			return
		}
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "invalid authorization header", nil)
			return
		}
		claims, err := tokens.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid or expired token", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUsernameKey, claims.Username)
		c.Next()
	}
}
