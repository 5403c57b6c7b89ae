package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
)

// identityKey is the key under which the resolved session identity is stored
// in the request context.
const identityKey = contextKey("sessionIdentity")

// GetIdentityFromContext retrieves the authenticated session identity from
// the request context. It returns nil and false for anonymous requests.
func GetIdentityFromContext(c *gin.Context) (*domain.SessionIdentity, bool) {
	identity, ok := c.Request.Context().Value(identityKey).(*domain.SessionIdentity)
	if !ok || identity == nil {
		return nil, false
	}
	return identity, true
}
