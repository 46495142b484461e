package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/account"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/syncing"
	"github.com/vfg2006/seller-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/seller-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeServiceError converte os erros dos usecases no formato padronizado da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *reporting.ValidationError
		rateLimitErr  *syncing.RateLimitError
		transientErr  *syncing.TransientSyncError
		accountErr    *account.AccountError
	)

	switch {
	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, validationErr.Message, validationErr)

	case errors.Is(err, reporting.ErrUnknownMetric):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.As(err, &rateLimitErr):
		apiErrors.WriteError(w, apiErrors.ErrSyncTooFrequent, rateLimitErr.Message(), map[string]any{
			"remaining_hours": rateLimitErr.RemainingHours,
			"unit":            rateLimitErr.Unit,
		})

	case errors.Is(err, syncing.ErrWorkspaceNotFound), errors.Is(err, syncing.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)

	case errors.Is(err, syncing.ErrWorkspaceWithoutAPIKey):
		apiErrors.WriteError(w, apiErrors.ErrWorkspaceWithoutKey, "Workspace sem chave de API do marketplace", nil)

	case errors.As(err, &transientErr):
		apiErrors.WriteError(w, apiErrors.ErrSyncFailed, "Falha ao sincronizar dados do marketplace", map[string]any{
			"stage": transientErr.Stage,
		})

	case errors.As(err, &accountErr):
		apiErrors.WriteError(w, accountErr.Code, accountErr.Details, nil)

	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}
