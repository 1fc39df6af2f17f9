package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/listingdesk/backoffice/internal/config"
	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(secret string) *HMACAuth {
	cfg := config.GetDefaultConfig()
	cfg.Auth.Secret = secret
	return NewHMACAuth(cfg)
}

func TestValidateToken(t *testing.T) {
	ctx := context.Background()
	a := newAuth("s3cret")

	signed := func(claims jwt.MapClaims, method jwt.SigningMethod, key interface{}) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}

	validToken, err := a.GenerateToken(Claims{UserID: "u1", TenantID: "t1", OwnerID: "o1"}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		want    *Claims
		wantErr bool
	}{
		{
			name:  "round trip",
			token: validToken,
			want:  &Claims{UserID: "u1", TenantID: "t1", OwnerID: "o1"},
		},
		{
			name:  "unrestricted caller",
			token: signed(jwt.MapClaims{"user_id": "u1"}, jwt.SigningMethodHS256, []byte("s3cret")),
			want:  &Claims{UserID: "u1"},
		},
		{
			name:    "wrong secret",
			token:   signed(jwt.MapClaims{"user_id": "u1"}, jwt.SigningMethodHS256, []byte("other")),
			wantErr: true,
		},
		{
			name:    "expired",
			token:   signed(jwt.MapClaims{"user_id": "u1", "exp": time.Now().Add(-time.Hour).Unix()}, jwt.SigningMethodHS256, []byte("s3cret")),
			wantErr: true,
		},
		{
			name:    "missing user",
			token:   signed(jwt.MapClaims{"tenant_id": "t1"}, jwt.SigningMethodHS256, []byte("s3cret")),
			wantErr: true,
		},
		{
			name:    "unsigned",
			token:   signed(jwt.MapClaims{"user_id": "u1"}, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType),
			wantErr: true,
		},
		{
			name:    "garbage",
			token:   "not-a-token",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.ValidateToken(ctx, tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, ierr.IsPermissionDenied(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
