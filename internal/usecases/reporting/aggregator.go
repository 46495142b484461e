package reporting

import (
	"sort"

	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/pkg/utils"
)

// Aggregate soma as linhas de cada período e calcula todas as métricas com a variação em relação
// ao período anterior da lista. Períodos sobrepostos contam a mesma linha em ambos.
func Aggregate(periods []domain.Period, rows []domain.MetricRow) domain.PeriodRollup {
	totals := totalsByPeriod(periods, rows)

	metrics := make(map[domain.MetricKey][]domain.MetricPoint, len(domain.AllMetricKeys))
	for _, key := range domain.AllMetricKeys {
		metrics[key] = buildPoints(key, periods, totals)
	}

	return domain.PeriodRollup{
		Periods: periods,
		Metrics: metrics,
	}
}

// MetricSeries monta a série da métrica por artigo. Sem articleIDs, usa todos os artigos presentes nas linhas.
func MetricSeries(key domain.MetricKey, periods []domain.Period, articleIDs []int64, rows []domain.MetricRow) []domain.ArticleSeries {
	byArticle := make(map[int64][]domain.MetricRow)
	for _, row := range rows {
		byArticle[row.ArticleID] = append(byArticle[row.ArticleID], row)
	}

	if len(articleIDs) == 0 {
		articleIDs = make([]int64, 0, len(byArticle))
		for id := range byArticle {
			articleIDs = append(articleIDs, id)
		}
		sort.Slice(articleIDs, func(i, j int) bool { return articleIDs[i] < articleIDs[j] })
	}

	series := make([]domain.ArticleSeries, 0, len(articleIDs))
	for _, articleID := range articleIDs {
		totals := totalsByPeriod(periods, byArticle[articleID])
		series = append(series, domain.ArticleSeries{
			ArticleID: articleID,
			Metric:    key,
			Points:    buildPoints(key, periods, totals),
		})
	}

	return series
}

func totalsByPeriod(periods []domain.Period, rows []domain.MetricRow) []domain.PeriodTotals {
	totals := make([]domain.PeriodTotals, len(periods))
	ranges := make([]domain.DateRange, len(periods))
	for i, p := range periods {
		ranges[i] = p.Range()
	}

	for _, row := range rows {
		for i := range ranges {
			if ranges[i].Contains(row.Date) {
				totals[i].Add(row)
			}
		}
	}

	return totals
}

func buildPoints(key domain.MetricKey, periods []domain.Period, totals []domain.PeriodTotals) []domain.MetricPoint {
	points := make([]domain.MetricPoint, len(periods))

	var previous *float64
	for i, p := range periods {
		value := MetricValue(key, totals[i])
		points[i] = domain.MetricPoint{
			PeriodID: p.ID,
			Value:    value,
		}
		if i > 0 {
			points[i].ChangePercent = ChangePercent(previous, value)
		}
		previous = value
	}

	return points
}

// MetricValue calcula o valor de uma métrica; nil quando o período não tem dados
// ou quando o denominador de uma razão é zero.
func MetricValue(key domain.MetricKey, t domain.PeriodTotals) *float64 {
	if !t.HasData {
		return nil
	}

	switch key {
	case domain.MetricTransitions:
		return count(t.Transitions)
	case domain.MetricCart:
		return count(t.Cart)
	case domain.MetricOrders:
		return count(t.Orders)
	case domain.MetricOrdersAmount:
		return amount(t.OrdersAmount)
	case domain.MetricViews:
		return count(t.Views)
	case domain.MetricClicks:
		return count(t.Clicks)
	case domain.MetricCosts:
		return amount(t.Costs)
	case domain.MetricCTR:
		return percent(float64(t.Clicks), float64(t.Views))
	case domain.MetricCPC:
		return ratio(t.Costs, float64(t.Clicks))
	case domain.MetricCPO:
		return ratio(t.Costs, float64(t.Orders))
	case domain.MetricDRR:
		return percent(t.Costs, t.OrdersAmount)
	case domain.MetricCartConversion:
		return percent(float64(t.Cart), float64(t.Transitions))
	case domain.MetricOrderConversion:
		return percent(float64(t.Orders), float64(t.Cart))
	}

	return nil
}

// ChangePercent é (atual - anterior) / anterior * 100; nil se algum valor faltar ou o anterior for zero
func ChangePercent(previous, current *float64) *float64 {
	if previous == nil || current == nil || *previous == 0 {
		return nil
	}
	change := utils.RoundWithTwoDecimalPlace((*current - *previous) / *previous * 100)
	return &change
}

func count(v int64) *float64 {
	f := float64(v)
	return &f
}

func amount(v float64) *float64 {
	f := utils.RoundWithTwoDecimalPlace(v)
	return &f
}

func ratio(numerator, denominator float64) *float64 {
	if denominator == 0 {
		return nil
	}
	f := utils.RoundWithTwoDecimalPlace(numerator / denominator)
	return &f
}

func percent(numerator, denominator float64) *float64 {
	if denominator == 0 {
		return nil
	}
	f := utils.RoundWithTwoDecimalPlace(numerator / denominator * 100)
	return &f
}
