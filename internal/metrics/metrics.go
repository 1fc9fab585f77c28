// Package metrics exposes application counters in the Prometheus format.
package metrics

import (
	"github.com/myrjola/ideacoach/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
)

// Metrics owns its own registry so that several servers can run in the same process, e.g., in tests.
type Metrics struct {
	registry        *prometheus.Registry
	pageViews       *prometheus.CounterVec
	chatReplies     *prometheus.CounterVec
	ideasSubmitted  prometheus.Counter
	exports         prometheus.Counter
	activeWorkspace prometheus.GaugeFunc
	storedSessions  prometheus.GaugeFunc
}

// New registers the application metrics. activeWorkspaces reports the number of workspaces held in memory and
// storedSessions the number of unexpired sessions in the session store.
func New(activeWorkspaces func() int, storedSessions func() int) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct // defaults
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		pageViews: factory.NewCounterVec(
			prometheus.CounterOpts{ //nolint:exhaustruct // optional fields
				Name: "ideacoach_page_switches_total",
				Help: "Total number of committed page switches by target page",
			},
			[]string{"page"},
		),
		chatReplies: factory.NewCounterVec(
			prometheus.CounterOpts{ //nolint:exhaustruct // optional fields
				Name: "ideacoach_chat_replies_total",
				Help: "Total number of mentor replies by topic",
			},
			[]string{"topic"},
		),
		ideasSubmitted: factory.NewCounter(
			prometheus.CounterOpts{ //nolint:exhaustruct // optional fields
				Name: "ideacoach_ideas_submitted_total",
				Help: "Total number of submitted business ideas",
			},
		),
		exports: factory.NewCounter(
			prometheus.CounterOpts{ //nolint:exhaustruct // optional fields
				Name: "ideacoach_exports_total",
				Help: "Total number of data exports",
			},
		),
		activeWorkspace: factory.NewGaugeFunc(
			prometheus.GaugeOpts{ //nolint:exhaustruct // optional fields
				Name: "ideacoach_active_workspaces",
				Help: "Number of workspaces held in memory",
			},
			func() float64 { return float64(activeWorkspaces()) },
		),
		storedSessions: factory.NewGaugeFunc(
			prometheus.GaugeOpts{ //nolint:exhaustruct // optional fields
				Name: "ideacoach_stored_sessions",
				Help: "Number of unexpired sessions in the session store",
			},
			func() float64 { return float64(storedSessions()) },
		),
	}
}

func (m *Metrics) PageCommitted(page models.Page) {
	m.pageViews.WithLabelValues(string(page)).Inc()
}

func (m *Metrics) ChatReplied(topic string) {
	m.chatReplies.WithLabelValues(topic).Inc()
}

func (m *Metrics) IdeaSubmitted() {
	m.ideasSubmitted.Inc()
}

func (m *Metrics) Exported() {
	m.exports.Inc()
}

// Handler serves the metrics of the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}) //nolint:exhaustruct // defaults
}
