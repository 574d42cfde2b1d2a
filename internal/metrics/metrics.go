package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	Registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	QuizTransitions *prometheus.CounterVec
	QuizCompletions prometheus.Counter
	LeadsCaptured   *prometheus.CounterVec
	ChatRequests    *prometheus.CounterVec
}

// New registers every collector on a fresh registry so tests can build
// as many instances as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "youngeru_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "youngeru_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		QuizTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "youngeru_quiz_transitions_total",
			Help: "Quiz wizard transitions by source and target step",
		}, []string{"from", "to"}),
		QuizCompletions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "youngeru_quiz_completions_total",
			Help: "Quiz sessions that reached the results step",
		}),
		LeadsCaptured: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "youngeru_leads_captured_total",
			Help: "Captured emails by source",
		}, []string{"source"}),
		ChatRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "youngeru_chat_requests_total",
			Help: "AI chat proxy requests by provider and outcome",
		}, []string{"provider", "outcome"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestsTotal,
		m.RequestDuration,
		m.QuizTransitions,
		m.QuizCompletions,
		m.LeadsCaptured,
		m.ChatRequests,
	)
	return m
}

// Middleware records request counts and latency per route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}
