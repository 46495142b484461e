package handler

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/account"
	"github.com/vfg2006/seller-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/seller-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/seller-analytics-api/pkg/middleware"
	"github.com/vfg2006/seller-analytics-api/pkg/utils"
)

// GetReportSummary retorna todas as métricas de cada período com a variação sobre o anterior
func GetReportSummary(accounts account.AccountService, service reporting.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.ClaimsFromContext(r.Context())
		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.ReportSummaryRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		periods, err := parsePeriods(request.Periods)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if _, err := accounts.GetWorkspace(r.Context(), claims, workspaceID); err != nil {
			writeServiceError(w, r, err)
			return
		}

		rollup, err := service.Aggregate(r.Context(), workspaceID, periods, request.ExcludedArticleIDs)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, rollup)
	}
}

func GetMetricSeries(accounts account.AccountService, service reporting.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.ClaimsFromContext(r.Context())
		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.MetricSeriesRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if request.Metric == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Métrica é obrigatória", nil)
			return
		}

		periods, err := parsePeriods(request.Periods)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if _, err := accounts.GetWorkspace(r.Context(), claims, workspaceID); err != nil {
			writeServiceError(w, r, err)
			return
		}

		series, err := service.MetricSeries(r.Context(), workspaceID, request.Metric, periods, request.ArticleIDs)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, domain.MetricSeriesResponse{
			Metric:  domain.MetricKey(request.Metric),
			Periods: periods,
			Series:  series,
		})
	}
}

func parsePeriods(requests []domain.PeriodRequest) ([]domain.Period, error) {
	periods := make([]domain.Period, 0, len(requests))
	for i, p := range requests {
		from, err := utils.ParseDate(p.From)
		if err != nil {
			return nil, fmt.Errorf("data inicial inválida no período %d: %q", i+1, p.From)
		}
		to, err := utils.ParseDate(p.To)
		if err != nil {
			return nil, fmt.Errorf("data final inválida no período %d: %q", i+1, p.To)
		}

		id := p.ID
		if id == "" {
			id = fmt.Sprintf("p%d", i+1)
		}

		periods = append(periods, domain.Period{
			ID:    id,
			Label: p.Label,
			From:  *from,
			To:    *to,
		})
	}
	return periods, nil
}
