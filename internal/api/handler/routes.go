package handler

import (
	"net/http"

	"github.com/vfg2006/seller-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/account"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/seller-analytics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Metrics expõe o registry do prometheus sem autenticação
func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Me(accounts account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(accounts),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sync(accounts account.AccountService, trigger ManualSyncTrigger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/sync",
			Method:      http.MethodPost,
			Handler:     SyncMyWorkspace(trigger),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/workspaces/:id/sync",
			Method:      http.MethodPost,
			Handler:     SyncWorkspace(accounts, trigger),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/workspaces/:id/status",
			Method:      http.MethodGet,
			Handler:     GetWorkspaceStatus(accounts),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(accounts account.AccountService, service reporting.ReportService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/workspaces/:id/reports/summary",
			Method:      http.MethodPost,
			Handler:     GetReportSummary(accounts, service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/workspaces/:id/reports/series",
			Method:      http.MethodPost,
			Handler:     GetMetricSeries(accounts, service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
