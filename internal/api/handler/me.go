package handler

import (
	"net/http"

	"github.com/vfg2006/seller-analytics-api/internal/usecases/account"
	"github.com/vfg2006/seller-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/seller-analytics-api/pkg/middleware"
)

// GetMe retorna os dados do token e o workspace padrão da conta
func GetMe(accounts account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		ws, err := accounts.GetDefaultWorkspace(r.Context(), claims)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"account_id": claims.AccountID,
			"email":      claims.Email,
			"role_id":    claims.RoleID,
			"workspace":  ws,
		})
	}
}
