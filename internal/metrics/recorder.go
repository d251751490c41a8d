// Package metrics exposes search statistics as Prometheus collectors.
package metrics

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/rivercross/pkg/domain"
)

// Recorder owns the search collectors and converts lifecycle events into samples.
type Recorder struct {
	processed *prometheus.CounterVec
	accepted  *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	solutions prometheus.Counter
	runs      prometheus.Counter
	depth     prometheus.Gauge
	duration  prometheus.Histogram
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		processed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rivercross_nodes_processed_total",
				Help: "Nodes dequeued and expanded, by depth",
			},
			[]string{"depth"},
		),
		accepted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rivercross_states_added_total",
				Help: "Children attached to the tree, by move",
			},
			[]string{"move"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rivercross_moves_rejected_total",
				Help: "Moves that did not produce a node, by reason",
			},
			[]string{"reason"},
		),
		solutions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rivercross_solutions_found_total",
			Help: "Solution nodes found",
		}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rivercross_searches_total",
			Help: "Completed searches",
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rivercross_search_max_depth",
			Help: "Deepest level reached by the last search",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rivercross_search_duration_seconds",
			Help:    "Wall time of a complete search",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}

	for _, c := range []prometheus.Collector{
		r.processed, r.accepted, r.rejected, r.solutions, r.runs, r.depth, r.duration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Hooks returns lifecycle hooks that record every event.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnProcess: func(_ context.Context, e *domain.NodeEvent) {
			r.processed.WithLabelValues(strconv.Itoa(e.Node.Depth)).Inc()
		},
		OnAccept: func(_ context.Context, e *domain.NodeEvent) {
			r.accepted.WithLabelValues(string(e.Node.Move)).Inc()
		},
		OnSolution: func(_ context.Context, e *domain.NodeEvent) {
			r.accepted.WithLabelValues(string(e.Node.Move)).Inc()
			r.solutions.Inc()
		},
		OnReject: func(_ context.Context, e *domain.RejectEvent) {
			r.rejected.WithLabelValues(string(e.Reason)).Inc()
		},
		OnComplete: func(_ context.Context, e *domain.CompleteEvent) {
			r.runs.Inc()
			r.depth.Set(float64(e.Stats.MaxDepth))
			r.duration.Observe(e.Stats.Duration.Seconds())
		},
	}
}
