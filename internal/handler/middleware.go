package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dmorgachev/ce-tracker/internal/domain"
	"github.com/dmorgachev/ce-tracker/internal/dto"
)

const identityContextKey = "identity"

// SessionResolver resolves a raw cookie credential to an identity.
type SessionResolver interface {
	Resolve(ctx context.Context, rawCredential string) (*domain.Identity, error)
}

// AuthMiddleware resolves the session cookie and stores the identity in the
// request context. Requests without a valid session never reach the handler.
func AuthMiddleware(resolver SessionResolver, cookieName string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cookieName)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Message: "Not authenticated",
			})
			c.Abort()
			return
		}

		ident, err := resolver.Resolve(c.Request.Context(), raw)
		if err != nil {
			respondError(c, logger, err)
			c.Abort()
			return
		}

		c.Set(identityContextKey, ident)
		c.Next()
	}
}

// ProMiddleware rejects authenticated callers without the pro flag. It must
// run after AuthMiddleware.
func ProMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, err := identityFromContext(c)
		if err != nil {
			respondError(c, logger, err)
			c.Abort()
			return
		}

		if !ident.IsPro {
			respondError(c, logger, fmt.Errorf("pro subscription required: %w", domain.ErrForbidden))
			c.Abort()
			return
		}

		c.Next()
	}
}

// identityFromContext returns the identity stored by AuthMiddleware.
func identityFromContext(c *gin.Context) (*domain.Identity, error) {
	value, exists := c.Get(identityContextKey)
	if !exists {
		return nil, fmt.Errorf("no identity in context: %w", domain.ErrUnauthenticated)
	}

	ident, ok := value.(*domain.Identity)
	if !ok {
		return nil, fmt.Errorf("invalid identity in context: %w", domain.ErrUnauthenticated)
	}

	return ident, nil
}
