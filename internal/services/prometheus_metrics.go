package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricSearchCompleted     = "search.completed"
	MetricToolDispatched      = "tool.dispatched"
	MetricLLMRequest          = "llm.request"
	MetricAccountSeeded       = "account.seeded"
	MetricCircuitBreakerState = "circuit_breaker.state"

	TimingSearch       = "search"
	TimingToolDispatch = "tool_dispatch"
	TimingLLMRequest   = "llm_request"
)

type PrometheusMetrics struct {
	searchRequests      *prometheus.CounterVec
	searchDuration      prometheus.Histogram
	toolDispatches      *prometheus.CounterVec
	toolDuration        prometheus.Histogram
	llmRequests         *prometheus.CounterVec
	llmDuration         prometheus.Histogram
	accountsSeeded      prometheus.Counter
	circuitBreakerState *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the collectors on reg. Pass
// prometheus.DefaultRegisterer in the server and a fresh registry in tests.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		searchRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insight_search_requests_total",
				Help: "Total number of natural-language search requests by outcome",
			},
			[]string{"outcome"},
		),
		searchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "insight_search_duration_seconds",
				Help:    "End-to-end search duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		toolDispatches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insight_tool_dispatch_total",
				Help: "Total number of tool dispatches",
			},
			[]string{"tool", "status"},
		),
		toolDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "insight_tool_duration_milliseconds",
				Help:    "Insight query duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		llmRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "llm_requests_total",
				Help: "Total number of chat completion requests",
			},
			[]string{"status"},
		),
		llmDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "llm_request_duration_seconds",
				Help:    "Chat completion latency in seconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
			},
		),
		accountsSeeded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "dev_accounts_seeded_total",
				Help: "Total number of development seeding runs",
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricSearchCompleted:
		if outcome := tags["outcome"]; outcome != "" {
			m.searchRequests.WithLabelValues(outcome).Inc()
		}
	case MetricToolDispatched:
		m.toolDispatches.WithLabelValues(tags["tool"], tags["status"]).Inc()
	case MetricLLMRequest:
		if status := tags["status"]; status != "" {
			m.llmRequests.WithLabelValues(status).Inc()
		}
	case MetricAccountSeeded:
		m.accountsSeeded.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case TimingSearch:
		m.searchDuration.Observe(duration.Seconds())
	case TimingToolDispatch:
		m.toolDuration.Observe(float64(duration.Milliseconds()))
	case TimingLLMRequest:
		m.llmDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == MetricCircuitBreakerState {
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
