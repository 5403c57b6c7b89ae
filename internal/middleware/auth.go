package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/newskeeper/newskeeper_backend/internal/core/ports/services"
)

// SessionAuth resolves the session cookie into an identity on the request
// context. Requests without a valid cookie simply stay anonymous; rejection
// is RequireAuth's job.
func SessionAuth(sessions portssvc.SessionSvcFacade, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		identity := sessions.Authenticate(c.Request.Context(), token)
		if identity == nil {
			c.Next()
			return
		}

		ctx := context.WithValue(c.Request.Context(), identityKey, identity)

		logger := GetLoggerFromCtx(ctx)
		enriched := logger.With(slog.String("user_id", identity.UserID))
		ctx = context.WithValue(ctx, loggerCtxKey, enriched)

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAuth aborts anonymous requests with 401 before any handler or store
// access runs.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetIdentityFromContext(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		c.Next()
	}
}
