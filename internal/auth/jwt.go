// Package auth validates the bearer tokens issued to back-office staff.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/listingdesk/backoffice/internal/config"
	ierr "github.com/listingdesk/backoffice/internal/errors"
)

const (
	claimUserID   = "user_id"
	claimTenantID = "tenant_id"
	claimOwnerID  = "owner_id"
)

// Claims is the caller identity carried by a token. TenantID and OwnerID are
// empty for callers that are not restricted to a tenant or owner.
type Claims struct {
	UserID   string
	TenantID string
	OwnerID  string
}

type Validator interface {
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}

// HMACAuth signs and validates HS256 tokens with the configured secret
type HMACAuth struct {
	secret []byte
}

func NewHMACAuth(cfg *config.Configuration) *HMACAuth {
	return &HMACAuth{secret: []byte(cfg.Auth.Secret)}
}

func (a *HMACAuth) ValidateToken(_ context.Context, token string) (*Claims, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				WithHint(fmt.Sprintf("unexpected signing method: %v", token.Header["alg"])).
				Mark(ierr.ErrPermissionDenied)
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Token parse error").
			Mark(ierr.ErrPermissionDenied)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ierr.NewError("invalid token claims").
			WithHint("Invalid token claims").
			Mark(ierr.ErrPermissionDenied)
	}

	userID, ok := claims[claimUserID].(string)
	if !ok || userID == "" {
		return nil, ierr.NewError("token has no user id").
			WithHint("Invalid token claims").
			Mark(ierr.ErrPermissionDenied)
	}

	tenantID, _ := claims[claimTenantID].(string)
	ownerID, _ := claims[claimOwnerID].(string)

	return &Claims{UserID: userID, TenantID: tenantID, OwnerID: ownerID}, nil
}

// GenerateToken issues a token for c that expires after ttl
func (a *HMACAuth) GenerateToken(c Claims, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		claimUserID: c.UserID,
		"exp":       now.Add(ttl).Unix(),
		"iat":       now.Unix(),
	}
	if c.TenantID != "" {
		claims[claimTenantID] = c.TenantID
	}
	if c.OwnerID != "" {
		claims[claimOwnerID] = c.OwnerID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to generate token").
			Mark(ierr.ErrSystem)
	}
	return signed, nil
}
