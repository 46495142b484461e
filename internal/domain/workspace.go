package domain

import (
	"strings"
	"time"
)

// Roles de conta usadas para filtrar quem participa da sincronização
const (
	RoleAdmin   = 1
	RoleManager = 2
	RoleSeller  = 3
)

type Account struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
	RoleID int    `json:"role_id"`
}

// Workspace representa o conjunto de credenciais do vendedor conectado ao marketplace
type Workspace struct {
	ID                        string     `json:"id"`
	AccountID                 string     `json:"account_id"`
	Name                      string     `json:"name"`
	APIKey                    *string    `json:"-"`
	APIKeyValid               bool       `json:"api_key_valid"`
	APIKeyValidatedAt         *time.Time `json:"api_key_validated_at"`
	IsDefault                 bool       `json:"is_default"`
	LastDataUpdateAt          *time.Time `json:"last_data_update_at"`
	LastDataUpdateRequestedAt *time.Time `json:"last_data_update_requested_at"`
	CreatedAt                 time.Time  `json:"created_at"`
}

// HasAPIKey indica se o workspace possui uma chave utilizável
func (w *Workspace) HasAPIKey() bool {
	return w != nil && w.APIKey != nil && strings.TrimSpace(*w.APIKey) != ""
}

// LastAction retorna o momento mais recente entre a última atualização e a última solicitação
func (w *Workspace) LastAction() *time.Time {
	return LatestOf(w.LastDataUpdateAt, w.LastDataUpdateRequestedAt)
}

// LatestOf retorna o maior dos dois instantes, tratando nil como ausente
func LatestOf(a, b *time.Time) *time.Time {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.After(*a):
		return b
	default:
		return a
	}
}

type WorkspaceStatusResponse struct {
	ID                        string     `json:"id"`
	Name                      string     `json:"name"`
	HasAPIKey                 bool       `json:"hasApiKey"`
	LastDataUpdateAt          *time.Time `json:"last_data_update_at"`
	LastDataUpdateRequestedAt *time.Time `json:"last_data_update_requested_at"`
}
