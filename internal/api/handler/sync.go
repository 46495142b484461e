package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/account"
	"github.com/vfg2006/seller-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/seller-analytics-api/pkg/log"
	"github.com/vfg2006/seller-analytics-api/pkg/middleware"
)

// ManualSyncTrigger é a atualização sob demanda exposta pelo scheduler
type ManualSyncTrigger interface {
	TriggerManualSync(ctx context.Context, accountID string) error
	TriggerManualSyncForWorkspace(ctx context.Context, workspaceID string) error
}

// SyncMyWorkspace atualiza o workspace padrão da conta autenticada.
// A requisição só retorna depois que a sincronização termina.
func SyncMyWorkspace(trigger ManualSyncTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		log.ForContext(r.Context()).WithField(log.FieldAccountID, claims.AccountID).Info("Atualização manual solicitada")

		if err := trigger.TriggerManualSync(r.Context(), claims.AccountID); err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, domain.SyncResponse{Message: "Dados atualizados com sucesso"})
	}
}

// SyncWorkspace atualiza um workspace específico, desde que pertença à conta
func SyncWorkspace(accounts account.AccountService, trigger ManualSyncTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.ClaimsFromContext(r.Context())
		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		ws, err := accounts.GetWorkspace(r.Context(), claims, workspaceID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if err := trigger.TriggerManualSyncForWorkspace(r.Context(), ws.ID); err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, domain.SyncResponse{
			Message:     "Dados atualizados com sucesso",
			WorkspaceID: ws.ID,
		})
	}
}

func GetWorkspaceStatus(accounts account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.ClaimsFromContext(r.Context())
		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		status, err := accounts.WorkspaceStatus(r.Context(), claims, workspaceID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
