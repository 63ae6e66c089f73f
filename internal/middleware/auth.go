package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/homecare-api/pkg/auth"
)

// ContextClaims is the gin context key holding the caller's claims.
const ContextClaims = "claims"

type AuthMiddleware struct {
	carrier *auth.Carrier
}

func NewAuthMiddleware(carrier *auth.Carrier) *AuthMiddleware {
	return &AuthMiddleware{carrier: carrier}
}

// Authenticate verifies the credential cookie and stores the claims in the
// context. Requests without a valid credential stop here with a 401.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.carrier.Extract(c.Request)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// RequireRoles admits callers whose role is one of roles.
func RequireRoles(roles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.CheckRole(CurrentClaims(c), roles...); err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentClaims returns the claims set by Authenticate, or nil.
func CurrentClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
