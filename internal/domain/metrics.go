package domain

import (
	"fmt"
	"time"
)

// Period é um período de relatório informado pelo cliente. A ordem da lista define o "anterior".
type Period struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	From  time.Time `json:"from"`
	To    time.Time `json:"to"`
}

func (p Period) Range() DateRange {
	return NewDateRange(p.From, p.To)
}

// MetricRow é uma linha diária de funil + publicidade para um artigo
type MetricRow struct {
	ArticleID    int64     `json:"article_id"`
	Date         time.Time `json:"date"`
	Transitions  int64     `json:"transitions"`
	Cart         int64     `json:"cart"`
	Orders       int64     `json:"orders"`
	OrdersAmount float64   `json:"orders_amount"`
	Views        int64     `json:"views"`
	Clicks       int64     `json:"clicks"`
	Costs        float64   `json:"costs"`
}

// Merge soma os valores de outra linha do mesmo artigo e dia
func (r *MetricRow) Merge(other MetricRow) {
	r.Transitions += other.Transitions
	r.Cart += other.Cart
	r.Orders += other.Orders
	r.OrdersAmount += other.OrdersAmount
	r.Views += other.Views
	r.Clicks += other.Clicks
	r.Costs += other.Costs
}

// MetricPoint carrega o valor de uma métrica em um período. Ponteiros nil significam ausência.
type MetricPoint struct {
	PeriodID      string   `json:"period_id"`
	Value         *float64 `json:"value"`
	ChangePercent *float64 `json:"change_percent"`
}

type MetricKey string

const (
	MetricTransitions     MetricKey = "transitions"
	MetricCart            MetricKey = "cart"
	MetricOrders          MetricKey = "orders"
	MetricOrdersAmount    MetricKey = "orders_amount"
	MetricViews           MetricKey = "views"
	MetricClicks          MetricKey = "clicks"
	MetricCosts           MetricKey = "costs"
	MetricCTR             MetricKey = "ctr"
	MetricCPC             MetricKey = "cpc"
	MetricCPO             MetricKey = "cpo"
	MetricDRR             MetricKey = "drr"
	MetricCartConversion  MetricKey = "cart_conversion"
	MetricOrderConversion MetricKey = "order_conversion"
)

// AllMetricKeys na ordem em que aparecem nos relatórios
var AllMetricKeys = []MetricKey{
	MetricTransitions,
	MetricCart,
	MetricOrders,
	MetricOrdersAmount,
	MetricViews,
	MetricClicks,
	MetricCosts,
	MetricCTR,
	MetricCPC,
	MetricCPO,
	MetricDRR,
	MetricCartConversion,
	MetricOrderConversion,
}

func ParseMetricKey(s string) (MetricKey, error) {
	for _, key := range AllMetricKeys {
		if string(key) == s {
			return key, nil
		}
	}
	return "", fmt.Errorf("unknown metric key: %q", s)
}

// PeriodTotals são as somas brutas de um período. HasData é falso quando nenhuma linha caiu no período.
type PeriodTotals struct {
	HasData      bool
	Transitions  int64
	Cart         int64
	Orders       int64
	OrdersAmount float64
	Views        int64
	Clicks       int64
	Costs        float64
}

func (t *PeriodTotals) Add(row MetricRow) {
	t.HasData = true
	t.Transitions += row.Transitions
	t.Cart += row.Cart
	t.Orders += row.Orders
	t.OrdersAmount += row.OrdersAmount
	t.Views += row.Views
	t.Clicks += row.Clicks
	t.Costs += row.Costs
}

// PeriodRollup agrupa todas as séries de KPI por período
type PeriodRollup struct {
	Periods []Period                    `json:"periods"`
	Metrics map[MetricKey][]MetricPoint `json:"metrics"`
}

// ArticleSeries é a série de uma métrica para um artigo
type ArticleSeries struct {
	ArticleID int64         `json:"article_id"`
	Metric    MetricKey     `json:"metric"`
	Points    []MetricPoint `json:"points"`
}
