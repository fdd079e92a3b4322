package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// IdentityResolver maps a bearer token to a user id.
type IdentityResolver interface {
	ResolveIdentity(token string) (string, error)
}

type AuthMiddleware struct {
	guard IdentityResolver
}

func NewAuthMiddleware(guard IdentityResolver) *AuthMiddleware {
	return &AuthMiddleware{guard: guard}
}

// RequireAuth resolves the bearer token and stashes the user id on the
// request context. Missing, malformed and expired tokens all produce
// the same response.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c)
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))

		userID, err := m.guard.ResolveIdentity(raw)

		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(ctxUserIDKey, userID)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "unauthorized",
			"message": "Missing or invalid access token",
		},
	})
}

// Helper so handlers don't need to know the magic key.

func UserIDFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
