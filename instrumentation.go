package elastic4s

import (
	"github.com/prometheus/client_golang/prometheus" // Prometheus metrics.

	"github.com/tyth/elastic4s/pkg/metrics"
)

// Instrumentation holds Prometheus metrics about the requests an
// ElasticClient forwards to Elasticsearch.
type Instrumentation struct {
	// Total number of requests, by operation and outcome.
	RequestsTotal *prometheus.CounterVec

	// Duration of requests, by operation.
	RequestDuration *prometheus.SummaryVec
}

// NewInstrumentation returns a new Instrumentation.
func NewInstrumentation(namespace string) *Instrumentation {
	if namespace == "" {
		namespace = metrics.Namespace
	}
	return &Instrumentation{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of requests forwarded to Elasticsearch.",
			},
			[]string{metrics.LabelOperation, metrics.LabelStatus},
		),
		RequestDuration: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Namespace:  namespace,
				Name:       "request_duration_seconds",
				Help:       "Duration of requests forwarded to Elasticsearch.",
				Objectives: metrics.DefaultObjectives,
			},
			[]string{metrics.LabelOperation},
		),
	}
}

// countRequest counts one finished request by operation and outcome.
func (m *Instrumentation) countRequest(op string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.RequestsTotal.WithLabelValues(op, status).Inc()
}

// Describe implements the prometheus.Collector interface.
func (m *Instrumentation) Describe(c chan<- *prometheus.Desc) {
	m.RequestsTotal.Describe(c)
	m.RequestDuration.Describe(c)
}

// Collect implements the prometheus.Collector interface.
func (m *Instrumentation) Collect(c chan<- prometheus.Metric) {
	m.RequestsTotal.Collect(c)
	m.RequestDuration.Collect(c)
}
