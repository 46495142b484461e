package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-analytics-api/internal/config"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

func TestService_IssueAndValidateToken(t *testing.T) {
	svc := NewService(&config.Config{Auth: config.Auth{Secret: "segredo"}})

	token, err := svc.IssueToken(&domain.Account{ID: "acc-1", RoleID: domain.RoleSeller}, "seller@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.AccountID)
	assert.Equal(t, domain.RoleSeller, claims.RoleID)
	assert.Equal(t, "seller@example.com", claims.Email)
}

func TestService_ValidateToken(t *testing.T) {
	now := time.Now()

	sign := func(secret string, method jwt.SigningMethod, claims domain.Claims) string {
		token := jwt.NewWithClaims(method, claims)
		s, err := token.SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name        string
		token       func() string
		expectedErr error
	}{
		{
			name: "segredo diferente",
			token: func() string {
				return sign("outro", jwt.SigningMethodHS256, domain.Claims{AccountID: "acc-1"})
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name: "token expirado",
			token: func() string {
				return sign("segredo", jwt.SigningMethodHS256, domain.Claims{
					AccountID: "acc-1",
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
					},
				})
			},
			expectedErr: ErrExpiredToken,
		},
		{
			name: "sem conta",
			token: func() string {
				return sign("segredo", jwt.SigningMethodHS256, domain.Claims{})
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name:        "lixo",
			token:       func() string { return "nao-e-um-jwt" },
			expectedErr: ErrInvalidToken,
		},
	}

	svc := NewService(&config.Config{Auth: config.Auth{Secret: "segredo"}})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token())

			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestService_IssueToken_MissingSecret(t *testing.T) {
	svc := NewService(&config.Config{})

	_, err := svc.IssueToken(&domain.Account{ID: "acc-1"}, "")

	assert.ErrorIs(t, err, ErrMissingSecret)
}
