// Package metrics exposes simulator counters through Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SimMetrics holds the simulator instrumentation: control ticks, published
// frames per flow and control tick duration.
type SimMetrics struct {
	ControlTicks prometheus.Counter
	Frames       *prometheus.CounterVec
	TickDuration prometheus.Histogram
}

// NewSimMetrics registers the simulator metrics on the given registerer. A
// nil registerer defaults to the global one. Re-registration reuses the
// existing collectors, so repeated construction is safe.
func NewSimMetrics(reg prometheus.Registerer) (*SimMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	ticks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sim_control_ticks_total",
		Help: "Total number of control loop ticks",
	})
	frames := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sim_frames_published_total",
		Help: "Telemetry frames published, by flow",
	}, []string{"flow"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sim_control_tick_duration_seconds",
		Help:    "Duration of one control tick",
		Buckets: prometheus.DefBuckets,
	})

	if err := reg.Register(ticks); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			ticks = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(frames); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			frames = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &SimMetrics{ControlTicks: ticks, Frames: frames, TickDuration: duration}, nil
}
