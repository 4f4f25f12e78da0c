// Package metrics exposes Prometheus instrumentation for the tool runtime.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the tool runtime
type Metrics struct {
	registry *prometheus.Registry

	// Execution metrics
	ExecutionsTotal   *prometheus.CounterVec
	ExecutionDuration *prometheus.HistogramVec
	ExecutionErrors   *prometheus.CounterVec

	// Registry metrics
	ToolsRegistered prometheus.Gauge

	// Batch metrics
	BatchRunsTotal *prometheus.CounterVec
}

// New creates and registers all metrics
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		ExecutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tool_executions_total",
				Help: "Total number of tool executions",
			},
			[]string{"tool_id", "status"},
		),
		ExecutionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tool_execution_duration_seconds",
				Help:    "Duration of tool executions in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"tool_id"},
		),
		ExecutionErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tool_execution_errors_total",
				Help: "Total number of tool execution errors",
			},
			[]string{"tool_id", "error_code"},
		),

		ToolsRegistered: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "tools_registered",
				Help: "Number of tools currently registered",
			},
		),

		BatchRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "batch_runs_total",
				Help: "Total number of batch executions",
			},
			[]string{"mode"},
		),
	}

	m.registerMetrics()

	return m
}

// registerMetrics registers all metrics with the registry
func (m *Metrics) registerMetrics() {
	m.registry.MustRegister(m.ExecutionsTotal)
	m.registry.MustRegister(m.ExecutionDuration)
	m.registry.MustRegister(m.ExecutionErrors)
	m.registry.MustRegister(m.ToolsRegistered)
	m.registry.MustRegister(m.BatchRunsTotal)
}

// ObserveExecution records one tool execution outcome.
func (m *Metrics) ObserveExecution(toolID, status string, seconds float64) {
	m.ExecutionsTotal.WithLabelValues(toolID, status).Inc()
	m.ExecutionDuration.WithLabelValues(toolID).Observe(seconds)
}

// ObserveError records one tool execution failure by error code.
func (m *Metrics) ObserveError(toolID, errorCode string) {
	m.ExecutionErrors.WithLabelValues(toolID, errorCode).Inc()
}

// Handler returns an HTTP handler for the metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry returns the Prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
