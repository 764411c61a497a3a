// Package metrics exposes engine counters to Prometheus.
package metrics

import (
	"math/big"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"quadlife/pkg/life"
)

// Metrics publishes world and store gauges plus a step-latency histogram.
type Metrics struct {
	generation   prometheus.Gauge
	population   prometheus.Gauge
	treeLevel    prometheus.Gauge
	liveNodes    prometheus.Gauge
	nodesCreated prometheus.Gauge
	stepSeconds  prometheus.Histogram
}

// New registers the engine collectors with reg and returns them.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		generation: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "quadlife",
			Name:      "generation",
			Help:      "Generations stepped since the world was created.",
		}),
		population: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "quadlife",
			Name:      "population",
			Help:      "Live cells in the world (lossy above 2^53).",
		}),
		treeLevel: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "quadlife",
			Name:      "tree_level",
			Help:      "Level of the root quadtree node.",
		}),
		liveNodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "quadlife",
			Name:      "store_nodes",
			Help:      "Nodes currently interned in the canonical store.",
		}),
		nodesCreated: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "quadlife",
			Name:      "store_nodes_created_total",
			Help:      "Lifetime count of nodes interned, including swept ones.",
		}),
		stepSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quadlife",
			Name:      "step_seconds",
			Help:      "Wall time of a single generation step.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
	}
}

// Update publishes a stats snapshot.
func (m *Metrics) Update(st life.Stats) {
	m.generation.Set(float64(st.Generation))
	m.population.Set(bigFloat(st.Population))
	m.treeLevel.Set(float64(st.Level))
	m.liveNodes.Set(float64(st.LiveNodes))
	m.nodesCreated.Set(float64(st.NodesCreated))
}

// ObserveStep records the wall time of one generation step.
func (m *Metrics) ObserveStep(d time.Duration) {
	m.stepSeconds.Observe(d.Seconds())
}

func bigFloat(n *big.Int) float64 {
	if n == nil {
		return 0
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}

// Handler serves the given registry in the Prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
