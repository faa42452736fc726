// Package metrics provides Prometheus metrics for the weekender planner.
package metrics

import (
	"context"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// scoreBuckets covers the additive score range with room for custom weights.
var scoreBuckets = []float64{0, 20, 40, 60, 80, 100, 120, 150}

// Manager manages all Prometheus metrics for the planner.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Recommendation metrics
	recommendationsComputed prometheus.Counter
	recommendationLatency   prometheus.Histogram
	recommendationScore     prometheus.Histogram
	recommendationsReturned prometheus.Histogram

	// Session metrics
	profileUpdates    prometheus.Counter
	weatherUpdates    prometheus.Counter
	themeChanges      *prometheus.CounterVec
	wizardTransitions *prometheus.CounterVec
	catalogSize       prometheus.Gauge
	catalogDropped    prometheus.Counter
	liveClients       prometheus.Gauge
	liveMessages      *prometheus.CounterVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics
	errorRateByComponent *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

var (
	globalMu      sync.RWMutex //nolint:gochecknoglobals // guards the globals below
	globalManager *Manager     //nolint:gochecknoglobals // singleton metrics manager

	// Custom registry to avoid default Go metrics.
	customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry
)

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// Configure replaces the global manager with one built from opts on a fresh
// registry. Call it at startup, before components capture Global().
func Configure(opts ...Option) *Manager {
	registry := prometheus.NewRegistry()
	m := NewManager(append(opts[:len(opts):len(opts)], WithPrometheusRegistry(registry))...)

	globalMu.Lock()
	defer globalMu.Unlock()
	customRegistry = registry
	globalManager = m
	return m
}

// NewManager creates a metrics manager registered on the configured registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "weekender",
		subsystem:        "planner",
		histogramBuckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) name(n string) string {
	if m.metricPrefix == "" {
		return n
	}
	return m.metricPrefix + "_" + n
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name(name),
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name(name),
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name(name),
		Help:        help,
		Buckets:     buckets,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every metric
	auto := promauto.With(m.registry)

	m.recommendationsComputed = auto.NewCounter(m.counterOpts(
		"recommendations_computed_total",
		"Total number of recommendation lists computed"))

	m.recommendationLatency = auto.NewHistogram(m.histogramOpts(
		"recommendation_latency_milliseconds",
		"Time to score, filter and sort the catalog in milliseconds",
		m.histogramBuckets))

	m.recommendationScore = auto.NewHistogram(m.histogramOpts(
		"recommendation_score",
		"Distribution of event scores",
		scoreBuckets))

	m.recommendationsReturned = auto.NewHistogram(m.histogramOpts(
		"recommendations_returned",
		"Number of recommendations in each response",
		[]float64{0, 1, 3, 5, 10, 25, 50, 100}))

	m.profileUpdates = auto.NewCounter(m.counterOpts(
		"profile_updates_total",
		"Total number of profile replacements"))

	m.weatherUpdates = auto.NewCounter(m.counterOpts(
		"weather_updates_total",
		"Total number of weather snapshot replacements"))

	m.themeChanges = auto.NewCounterVec(m.counterOpts(
		"theme_changes_total",
		"Total number of theme changes by theme"),
		[]string{"theme"})

	m.wizardTransitions = auto.NewCounterVec(m.counterOpts(
		"wizard_transitions_total",
		"Wizard transitions by action and outcome"),
		[]string{"action", "outcome"})

	m.catalogSize = auto.NewGauge(m.gaugeOpts(
		"catalog_size",
		"Number of events in the loaded catalog"))

	m.catalogDropped = auto.NewCounter(m.counterOpts(
		"catalog_dropped_total",
		"Catalog entries dropped as duplicates or invalid"))

	m.liveClients = auto.NewGauge(m.gaugeOpts(
		"live_clients",
		"Connected live update clients"))

	m.liveMessages = auto.NewCounterVec(m.counterOpts(
		"live_messages_total",
		"Live update messages broadcast by type"),
		[]string{"type"})

	m.httpRequests = auto.NewCounterVec(m.counterOpts(
		"http_requests_total",
		"Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(m.histogramOpts(
		"http_request_duration_milliseconds",
		"HTTP request duration in milliseconds",
		m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"})

	m.errorRateByComponent = auto.NewCounterVec(m.counterOpts(
		"errors_by_component_total",
		"Total number of errors by component"),
		[]string{"component", "error_type"})

	m.errorRateByEndpoint = auto.NewCounterVec(m.counterOpts(
		"errors_by_endpoint_total",
		"Total number of errors by endpoint"),
		[]string{"endpoint", "method", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts(
		"system_memory_usage_bytes",
		"Heap memory in use in bytes"))

	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts(
		"system_goroutine_count",
		"Number of goroutines"))
}

// RecordRecommendations records one computed list: its latency, size and
// every score in it.
func (m *Manager) RecordRecommendations(latency time.Duration, scores []int) {
	if !m.enabled {
		return
	}
	m.recommendationsComputed.Inc()
	m.recommendationLatency.Observe(float64(latency.Microseconds()) / 1000)
	m.recommendationsReturned.Observe(float64(len(scores)))
	for _, s := range scores {
		m.recommendationScore.Observe(float64(s))
	}
}

// RecordProfileUpdate increments the profile updates counter.
func (m *Manager) RecordProfileUpdate() {
	if m.enabled {
		m.profileUpdates.Inc()
	}
}

// RecordWeatherUpdate increments the weather updates counter.
func (m *Manager) RecordWeatherUpdate() {
	if m.enabled {
		m.weatherUpdates.Inc()
	}
}

// RecordThemeChange counts a theme switch.
func (m *Manager) RecordThemeChange(theme string) {
	if m.enabled {
		m.themeChanges.WithLabelValues(theme).Inc()
	}
}

// RecordWizardTransition counts a wizard action with its outcome
// (ok, incomplete, invalid).
func (m *Manager) RecordWizardTransition(action, outcome string) {
	if m.enabled {
		m.wizardTransitions.WithLabelValues(action, outcome).Inc()
	}
}

// UpdateCatalogSize sets the catalog size gauge.
func (m *Manager) UpdateCatalogSize(n int) {
	if m.enabled {
		m.catalogSize.Set(float64(n))
	}
}

// RecordCatalogDropped adds n dropped catalog entries.
func (m *Manager) RecordCatalogDropped(n int) {
	if m.enabled && n > 0 {
		m.catalogDropped.Add(float64(n))
	}
}

// UpdateLiveClients sets the connected live client gauge.
func (m *Manager) UpdateLiveClients(n int) {
	if m.enabled {
		m.liveClients.Set(float64(n))
	}
}

// RecordLiveMessage counts a broadcast message.
func (m *Manager) RecordLiveMessage(msgType string) {
	if m.enabled {
		m.liveMessages.WithLabelValues(msgType).Inc()
	}
}

// RecordHTTPRequest records an HTTP request and its duration in milliseconds.
func (m *Manager) RecordHTTPRequest(endpoint, method string, status int, durationMs float64) {
	if !m.enabled {
		return
	}
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(endpoint, method, code).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, code).Observe(durationMs)
}

// RecordErrorByComponent records an error with component and type labels.
func (m *Manager) RecordErrorByComponent(component, errorType string) {
	if m.enabled {
		m.errorRateByComponent.WithLabelValues(component, errorType).Inc()
	}
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func (m *Manager) RecordErrorByEndpoint(endpoint, method, errorType string) {
	if m.enabled {
		m.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// RefreshSystem samples memory and goroutine counts.
func (m *Manager) RefreshSystem() {
	if !m.enabled {
		return
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	m.systemMemoryUsage.Set(float64(ms.HeapAlloc))
	m.systemGoroutineCount.Set(float64(runtime.NumGoroutine()))
}

// RunSystemCollector refreshes system metrics every refresh interval until
// ctx is done.
func (m *Manager) RunSystemCollector(ctx context.Context) {
	t := time.NewTicker(m.refreshInterval)
	defer t.Stop()
	m.RefreshSystem()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.RefreshSystem()
		}
	}
}

// Global returns the process-wide manager bound to GetRegistry.
func Global() *Manager {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalManager
}

// Package-level shorthands on the global manager.

// RecordRecommendations records a computed list on the global manager.
func RecordRecommendations(latency time.Duration, scores []int) {
	Global().RecordRecommendations(latency, scores)
}

// RecordProfileUpdate increments the global profile updates counter.
func RecordProfileUpdate() { Global().RecordProfileUpdate() }

// RecordWeatherUpdate increments the global weather updates counter.
func RecordWeatherUpdate() { Global().RecordWeatherUpdate() }

// RecordThemeChange counts a theme switch on the global manager.
func RecordThemeChange(theme string) { Global().RecordThemeChange(theme) }

// RecordWizardTransition counts a wizard action on the global manager.
func RecordWizardTransition(action, outcome string) {
	Global().RecordWizardTransition(action, outcome)
}

// UpdateCatalogSize sets the global catalog size gauge.
func UpdateCatalogSize(n int) { Global().UpdateCatalogSize(n) }

// RecordCatalogDropped adds dropped entries on the global manager.
func RecordCatalogDropped(n int) { Global().RecordCatalogDropped(n) }

// UpdateLiveClients sets the global live client gauge.
func UpdateLiveClients(n int) { Global().UpdateLiveClients(n) }

// RecordLiveMessage counts a broadcast on the global manager.
func RecordLiveMessage(msgType string) { Global().RecordLiveMessage(msgType) }

// RecordHTTPRequest records an HTTP request on the global manager.
func RecordHTTPRequest(endpoint, method string, status int, durationMs float64) {
	Global().RecordHTTPRequest(endpoint, method, status, durationMs)
}

// RecordErrorByComponent records a component error on the global manager.
func RecordErrorByComponent(component, errorType string) {
	Global().RecordErrorByComponent(component, errorType)
}

// RecordErrorByEndpoint records an endpoint error on the global manager.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	Global().RecordErrorByEndpoint(endpoint, method, errorType)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return customRegistry
}
