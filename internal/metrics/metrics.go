// Package metrics collects Prometheus metrics for tool calls and Zoom API requests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	MetricsNamespace         = "zoom_mcp"
	MetricsSubsystemSystem   = "system"
	MetricsSubsystemTools    = "tools"
	MetricsSubsystemUpstream = "upstream"

	MetricsVersionLabel = "version"
)

// Outcome labels of a tool call.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

type Metrics interface {
	Registry() *prometheus.Registry
	Handler() http.Handler

	ObserveToolCall(tool, outcome string, elapsed float64)
	ObserveUpstreamRequest(method, statusCode string, elapsed float64)
}

type metrics struct {
	registry *prometheus.Registry

	startTime prometheus.Gauge
	info      prometheus.Gauge

	toolCalls    *prometheus.CounterVec
	toolDuration *prometheus.HistogramVec

	upstreamDuration *prometheus.HistogramVec
}

// New creates a collector on its own registry.
func New(version string) Metrics {
	m := &metrics{}

	m.registry = prometheus.NewRegistry()
	m.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
		Namespace: MetricsNamespace,
	}))
	m.registry.MustRegister(collectors.NewGoCollector())

	m.startTime = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemSystem,
		Name:      "start_timestamp_seconds",
		Help:      "The time the server started.",
	})
	m.startTime.SetToCurrentTime()
	m.registry.MustRegister(m.startTime)

	m.info = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   MetricsNamespace,
		Subsystem:   MetricsSubsystemSystem,
		Name:        "info",
		Help:        "The server version.",
		ConstLabels: prometheus.Labels{MetricsVersionLabel: version},
	})
	m.info.Set(1)
	m.registry.MustRegister(m.info)

	m.toolCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemTools,
		Name:      "calls_total",
		Help:      "The total number of tool calls.",
	}, []string{"tool", "outcome"})
	m.registry.MustRegister(m.toolCalls)

	m.toolDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemTools,
		Name:      "call_duration_seconds",
		Help:      "Time to execute a tool call.",
	}, []string{"tool"})
	m.registry.MustRegister(m.toolDuration)

	m.upstreamDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemUpstream,
		Name:      "request_duration_seconds",
		Help:      "Time to complete a Zoom API request.",
	}, []string{"method", "status_code"})
	m.registry.MustRegister(m.upstreamDuration)

	return m
}

func (m *metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metrics) ObserveToolCall(tool, outcome string, elapsed float64) {
	if m != nil {
		m.toolCalls.With(prometheus.Labels{"tool": tool, "outcome": outcome}).Inc()
		m.toolDuration.With(prometheus.Labels{"tool": tool}).Observe(elapsed)
	}
}

func (m *metrics) ObserveUpstreamRequest(method, statusCode string, elapsed float64) {
	if m != nil {
		m.upstreamDuration.With(prometheus.Labels{"method": method, "status_code": statusCode}).Observe(elapsed)
	}
}

// Transport records the duration of every request sent through base.
// Requests without a response are labelled with status code "0".
type Transport struct {
	Metrics Metrics
	Base    http.RoundTripper
}

var _ http.RoundTripper = (*Transport)(nil)

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	t.Metrics.ObserveUpstreamRequest(req.Method, strconv.Itoa(status), time.Since(start).Seconds())

	return resp, err
}
