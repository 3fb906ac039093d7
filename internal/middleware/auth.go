package middleware

import (
	"net/http"
	"strings"

	"github.com/ANSH5252/LivePulse/internal/entity"
	"github.com/ANSH5252/LivePulse/internal/lib/jwt"
	"github.com/gin-gonic/gin"
)

// Context keys set for downstream handlers.
const (
	CtxUserID = "userID"
	CtxRole   = "role"
)

type AuthMiddleware struct {
	secret string
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

// Middleware resolves the bearer token to an authenticated principal and
// aborts with 401 otherwise.
func (m *AuthMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := m.resolve(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid access token"})
			return
		}

		c.Set(CtxUserID, principal.UserID)
		c.Set(CtxRole, string(principal.Role))
		c.Next()
	}
}

// Optional resolves the principal when present but lets anonymous requests
// through. Used by the websocket endpoint: the public dashboard needs no
// identity, private channels do.
func (m *AuthMiddleware) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if principal, ok := m.resolve(c); ok {
			c.Set(CtxUserID, principal.UserID)
			c.Set(CtxRole, string(principal.Role))
		}
		c.Next()
	}
}

func (m *AuthMiddleware) resolve(c *gin.Context) (entity.Principal, bool) {
	accessToken := extractTokenFromHeader(c.GetHeader("Authorization"))
	if accessToken == "" {
		// Browsers cannot set headers on websocket upgrades.
		accessToken = c.Query("token")
	}
	if accessToken == "" {
		return entity.Principal{}, false
	}

	principal, err := jwt.Parse(accessToken, m.secret)
	if err != nil {
		return entity.Principal{}, false
	}

	return principal, true
}

func extractTokenFromHeader(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
