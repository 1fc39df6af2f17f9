package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/listingdesk/backoffice/internal/auth"
	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/listingdesk/backoffice/internal/logger"
	"github.com/listingdesk/backoffice/internal/types"
)

// GuestAuthenticateMiddleware trusts the identity headers as sent. It is only
// mounted when token auth is disabled.
func GuestAuthenticateMiddleware(c *gin.Context) {
	c.Request = c.Request.WithContext(withIdentity(c.Request.Context(),
		c.GetHeader(types.HeaderUserID),
		c.GetHeader(types.HeaderTenantID),
		c.GetHeader(types.HeaderOwnerID),
	))
	c.Next()
}

// AuthenticateMiddleware validates the bearer token in the Authorization
// header and sets the caller identity in the request context for downstream
// handlers
func AuthenticateMiddleware(validator auth.Validator, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(types.HeaderAuthorization)
		if authHeader == "" {
			abortWithError(c, ierr.NewError("missing authorization header").
				WithHint("Unauthorized").
				Mark(ierr.ErrPermissionDenied))
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortWithError(c, ierr.NewError("malformed authorization header").
				WithHint("Invalid authorization header format").
				Mark(ierr.ErrPermissionDenied))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := validator.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			logger.Debugw("failed to validate token", "error", err)
			abortWithError(c, err)
			return
		}

		c.Request = c.Request.WithContext(withIdentity(c.Request.Context(),
			claims.UserID, claims.TenantID, claims.OwnerID))
		c.Next()
	}
}

func withIdentity(ctx context.Context, userID, tenantID, ownerID string) context.Context {
	if userID != "" {
		ctx = types.SetUserID(ctx, userID)
	}
	if tenantID != "" {
		ctx = types.SetTenantID(ctx, tenantID)
	}
	if ownerID != "" {
		ctx = types.SetOwnerID(ctx, ownerID)
	}
	return ctx
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
