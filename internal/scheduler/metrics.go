package scheduler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
)

const metricsNamespace = "seller_analytics"

// Metrics reúne os coletores das sincronizações em um registry próprio
type Metrics struct {
	registry *prometheus.Registry

	workspaces     *prometheus.CounterVec
	runDuration    *prometheus.HistogramVec
	manualTriggers *prometheus.CounterVec
	inlineDispatch *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
	}

	m.workspaces = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "sync",
			Name:      "workspaces_total",
			Help:      "Workspaces processed by scheduled sync runs, by outcome",
		},
		[]string{"job", "outcome"},
	)

	m.runDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "sync",
			Name:      "run_duration_seconds",
			Help:      "Duration of scheduled sync runs",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1s a ~2h
		},
		[]string{"job"},
	)

	m.manualTriggers = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "manual_sync_total",
			Help:      "Manual sync requests, by outcome",
		},
		[]string{"outcome"},
	)

	m.inlineDispatch = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "sync",
			Name:      "inline_dispatch_total",
			Help:      "Tasks executed on the dispatching goroutine because the pool queue was full",
		},
		[]string{"job"},
	)

	m.registry.MustRegister(
		m.workspaces,
		m.runDuration,
		m.manualTriggers,
		m.inlineDispatch,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return m
}

// Handler expõe o registry no formato do Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRun(summary domain.RunSummary) {
	if m == nil {
		return
	}

	job := string(summary.Job)
	m.workspaces.WithLabelValues(job, string(domain.SyncOutcomeSucceeded)).Add(float64(summary.Succeeded))
	m.workspaces.WithLabelValues(job, string(domain.SyncOutcomeFailed)).Add(float64(summary.Failed))
	m.workspaces.WithLabelValues(job, string(domain.SyncOutcomeSkipped)).Add(float64(summary.Skipped))
	m.runDuration.WithLabelValues(job).Observe(summary.Duration().Seconds())
}

func (m *Metrics) ObserveManual(outcome string) {
	if m == nil {
		return
	}
	m.manualTriggers.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveInline(job domain.SyncJob) {
	if m == nil {
		return
	}
	m.inlineDispatch.WithLabelValues(string(job)).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

