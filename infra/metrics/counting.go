package metrics

import (
	"context"

	coretelemetry "github.com/zachAtSiftStack/tlmSim/core/telemetry"
)

// CountingSink decorates a telemetry sink with a per-flow publish counter.
type CountingSink struct {
	next coretelemetry.Sink
	m    *SimMetrics
}

// NewCountingSink wraps next with frame counting.
func NewCountingSink(next coretelemetry.Sink, m *SimMetrics) *CountingSink {
	return &CountingSink{next: next, m: m}
}

func (s *CountingSink) Publish(ctx context.Context, frame coretelemetry.Frame) error {
	s.m.Frames.WithLabelValues(frame.Flow).Inc()
	return s.next.Publish(ctx, frame)
}

func (s *CountingSink) Close() error { return s.next.Close() }
