package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa os coletores Prometheus da API
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheResults    *prometheus.CounterVec
	syncRuns        *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hangar_http_requests_total",
		Help: "Total de requisições HTTP por rota e status.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hangar_http_request_duration_seconds",
		Help:    "Duração das requisições HTTP por rota.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	cache := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hangar_report_cache_total",
		Help: "Consultas ao cache de relatórios por resultado.",
	}, []string{"result"})
	syncRuns := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hangar_scheduler_runs_total",
		Help: "Execuções dos jobs agendados por job e resultado.",
	}, []string{"job", "result"})

	registry.MustRegister(requests, duration, cache, syncRuns,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:   requests,
		requestDuration: duration,
		cacheResults:    cache,
		syncRuns:        syncRuns,
	}
}

// Handler expõe o endpoint /metrics
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveRequest registra uma requisição concluída. route deve ser o padrão da
// rota e não o caminho, para não explodir a cardinalidade.
func (m *Metrics) ObserveRequest(route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (m *Metrics) CacheHit() {
	if m != nil {
		m.cacheResults.WithLabelValues("hit").Inc()
	}
}

func (m *Metrics) CacheMiss() {
	if m != nil {
		m.cacheResults.WithLabelValues("miss").Inc()
	}
}

func (m *Metrics) CacheError() {
	if m != nil {
		m.cacheResults.WithLabelValues("error").Inc()
	}
}

func (m *Metrics) SyncRun(job string, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.syncRuns.WithLabelValues(job, result).Inc()
}
