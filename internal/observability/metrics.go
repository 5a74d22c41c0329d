package observability

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsOnce sync.Once

	nodesCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nodesim_nodes_created_total",
		Help: "Nodes created, by kind",
	}, []string{"kind"})

	associationOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nodesim_association_ops_total",
		Help: "AP/RT association changes, by operation",
	}, []string{"op"})

	heartbeats = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nodesim_heartbeats_total",
		Help: "Simulated heartbeat outcomes, by success",
	}, []string{"success"})

	registeredNodes = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "nodesim_registered_nodes",
		Help: "Nodes currently present in the registry",
	})
)

// RegisterMetrics registers the nodesim collectors with the default
// prometheus registry. Safe to call from multiple packages; only the first
// call registers.
func RegisterMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(nodesCreated, associationOps, heartbeats, registeredNodes)
	})
}

// RecordNodeCreated counts a created node of the given kind.
func RecordNodeCreated(kind string) {
	RegisterMetrics()
	nodesCreated.WithLabelValues(kind).Inc()
}

// RecordAssociation counts an association change ("add" or "remove").
func RecordAssociation(op string) {
	RegisterMetrics()
	associationOps.WithLabelValues(op).Inc()
}

// RecordHeartbeat counts a simulated heartbeat outcome.
func RecordHeartbeat(ok bool) {
	RegisterMetrics()
	heartbeats.WithLabelValues(strconv.FormatBool(ok)).Inc()
}

// SetRegisteredNodes sets the registry size gauge.
func SetRegisteredNodes(n int) {
	RegisterMetrics()
	registeredNodes.Set(float64(n))
}
