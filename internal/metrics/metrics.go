package metrics

import (
	"fmt"

	"arbor/pkg/arbor/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricsNamespace = "arbor"

	statusSkipped = "skipped"
)

// Listener counts node outcomes on its own registry so that a run can be
// exported as a node_exporter textfile.
type Listener struct {
	registry *prometheus.Registry

	nodesTotal   *prometheus.CounterVec
	nodeDuration *prometheus.HistogramVec
	runningNodes prometheus.Gauge
}

func NewListener() *Listener {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Listener{
		registry: registry,
		nodesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "nodes_total",
			Help:      "Count of finished or skipped nodes",
		}, []string{
			"kind",
			"status",
		}),
		nodeDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: MetricsNamespace,
			Name:      "node_duration_seconds",
			Help:      "Duration of finished nodes",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{
			"kind",
		}),
		runningNodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: MetricsNamespace,
			Name:      "running_nodes",
			Help:      "Number of nodes that started and have not finished",
		}),
	}
}

func (l *Listener) Started(node core.Node) {
	l.runningNodes.Inc()
}

func (l *Listener) Finished(node core.Node, result core.Result) {
	l.runningNodes.Dec()
	l.nodesTotal.WithLabelValues(node.Kind().String(), result.Status.String()).Inc()
	l.nodeDuration.WithLabelValues(node.Kind().String()).Observe(result.Duration.Seconds())
}

func (l *Listener) Skipped(node core.Node, reason string) {
	l.nodesTotal.WithLabelValues(node.Kind().String(), statusSkipped).Inc()
}

func (l *Listener) Registry() *prometheus.Registry {
	return l.registry
}

// WriteTextfile writes every metric of the run to path in the Prometheus
// text format.
func (l *Listener) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, l.registry); err != nil {
		return fmt.Errorf("failed to write metrics to '%s': %w", path, err)
	}

	return nil
}
