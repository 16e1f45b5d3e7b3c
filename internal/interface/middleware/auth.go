package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fajarp/task-tracker-api/pkg/helpers"
	"github.com/fajarp/task-tracker-api/pkg/response"
)

// Context keys set by RequireAuth.
const (
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "username"
)

// TokenVerifier is the small surface RequireAuth needs; tests can fake it.
type TokenVerifier interface {
	Verify(token string) (*helpers.Claims, error)
}

// RequireAuth extracts the bearer token from the Authorization header,
// verifies it, and injects the decoded {id, username} into the gin
// context. It does not re-check that the user record still exists, so a
// signed token for a deleted user is still accepted.
func RequireAuth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			response.AbortError(c, http.StatusUnauthorized, "Missing or Invalid Token")
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(raw))
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Bad/Expired Token")
			return
		}

		c.Set(CtxUserIDKey, claims.ID)
		c.Set(CtxUsernameKey, claims.Username)
		c.Next()
	}
}

// UserIDFrom returns the authenticated user id stashed by RequireAuth.
func UserIDFrom(c *gin.Context) (string, bool) {
	id := c.GetString(CtxUserIDKey)
	return id, id != ""
}
