// Package metrics holds constants and utilities for instrumenting
// elastic4s with Prometheus metrics.
package metrics

// Namespace is the namespace to be used for Prometheus metrics throughout elastic4s.
const Namespace = "elastic4s"

const (
	// LabelOperation is the Prometheus label name for the kind of
	// Elasticsearch request (search, index, bulk, ...).
	LabelOperation = "operation"

	// LabelStatus is the Prometheus label name for request outcome
	// ("success" or "error").
	LabelStatus = "status"
)

// DefaultObjectives are default objectives for Prometheus Summary metrics.
var DefaultObjectives = map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001}
