package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/seller-analytics-api/internal/scheduler"
	"github.com/vfg2006/seller-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/seller-analytics-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeAnalytics  = "analytics"
	CronJobTypeWarehouses = "warehouses"
	CronJobTypeAll        = "all"
)

// CronJob é uma sincronização agendada que também pode ser disparada manualmente
type CronJob interface {
	TriggerRun(ctx context.Context) error
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	AnalyticsSyncService CronJob
	WarehouseSyncService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		log.ForContext(r.Context()).WithField(log.FieldJob, cronType).Info("Execução manual de cron job solicitada")

		// a execução segue em background com um contexto próprio
		ctx := context.WithoutCancel(r.Context())

		var err error
		switch cronType {
		case CronJobTypeAnalytics:
			if services.AnalyticsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de analytics não disponível", nil)
				return
			}
			err = services.AnalyticsSyncService.TriggerRun(ctx)

		case CronJobTypeWarehouses:
			if services.WarehouseSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de armazéns não disponível", nil)
				return
			}
			err = services.WarehouseSyncService.TriggerRun(ctx)

		case CronJobTypeAll:
			for _, job := range []CronJob{services.AnalyticsSyncService, services.WarehouseSyncService} {
				if job == nil {
					continue
				}
				if jobErr := job.TriggerRun(ctx); jobErr != nil && !errors.Is(jobErr, scheduler.ErrSyncAlreadyRunning) {
					err = jobErr
				}
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: analytics, warehouses, all", nil)
			return
		}

		if errors.Is(err, scheduler.ErrSyncAlreadyRunning) {
			apiErrors.WriteError(w, apiErrors.ErrSyncRunning, "Sincronização já em execução", map[string]any{"type": cronType})
			return
		}
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.AnalyticsSyncService != nil {
			status[CronJobTypeAnalytics] = services.AnalyticsSyncService.GetStatus()
		}
		if services.WarehouseSyncService != nil {
			status[CronJobTypeWarehouses] = services.WarehouseSyncService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
