// Package metrics instruments the graph engine with Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every metric the engine exposes.
type Registry struct {
	// Layout
	LayoutDuration     prometheus.Histogram
	GraphNodes         prometheus.Gauge
	GraphEdges         prometheus.Gauge
	GraphClusters      prometheus.Gauge
	DanglingEdgesTotal prometheus.Counter

	// Frame loop
	RefineTicksTotal prometheus.Counter
	FramesTotal      prometheus.Counter
	FrameDuration    prometheus.Histogram

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all collectors registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		LayoutDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "assetgraph_layout_duration_seconds",
			Help:    "Time spent computing the initial hierarchical layout",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		GraphNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "assetgraph_nodes",
			Help: "Nodes in the currently loaded graph",
		}),
		GraphEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "assetgraph_edges",
			Help: "Edges in the currently loaded graph after filtering",
		}),
		GraphClusters: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "assetgraph_clusters",
			Help: "Connected components in the currently loaded graph",
		}),
		DanglingEdgesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "assetgraph_dangling_edges_total",
			Help: "Edges dropped because an endpoint was missing",
		}),
		RefineTicksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "assetgraph_refine_ticks_total",
			Help: "Force-refinement ticks executed",
		}),
		FramesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "assetgraph_frames_total",
			Help: "Frames rendered",
		}),
		FrameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "assetgraph_frame_duration_seconds",
			Help:    "Time spent per refine-and-render frame",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		registry: reg,
	}

	reg.MustRegister(
		r.LayoutDuration,
		r.GraphNodes,
		r.GraphEdges,
		r.GraphClusters,
		r.DanglingEdgesTotal,
		r.RefineTicksTotal,
		r.FramesTotal,
		r.FrameDuration,
	)

	return r
}

// ObserveLayout records one layout computation.
func (r *Registry) ObserveLayout(d time.Duration, nodes, edges, clusters, dropped int) {
	if r == nil {
		return
	}
	r.LayoutDuration.Observe(d.Seconds())
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
	r.GraphClusters.Set(float64(clusters))
	r.DanglingEdgesTotal.Add(float64(dropped))
}

// RecordTick counts one force-refinement tick.
func (r *Registry) RecordTick() {
	if r == nil {
		return
	}
	r.RefineTicksTotal.Inc()
}

// RecordFrame counts one rendered frame.
func (r *Registry) RecordFrame(d time.Duration) {
	if r == nil {
		return
	}
	r.FramesTotal.Inc()
	r.FrameDuration.Observe(d.Seconds())
}

// Prometheus returns the underlying registry for scrape handlers.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}
