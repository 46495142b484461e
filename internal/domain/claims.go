package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são os dados do vendedor autenticado extraídos do JWT
type Claims struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	RoleID    int    `json:"role_id"`
	jwt.RegisteredClaims
}
