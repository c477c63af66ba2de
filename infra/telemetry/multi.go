package telemetry

import (
	"context"
	"errors"

	coretelemetry "github.com/zachAtSiftStack/tlmSim/core/telemetry"
)

// MultiSink fans frames out to multiple sinks. Every sink sees every frame;
// errors are joined rather than short-circuiting.
type MultiSink struct {
	sinks []coretelemetry.Sink
}

// NewMultiSink creates a MultiSink over the provided sinks.
func NewMultiSink(sinks ...coretelemetry.Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Publish forwards the frame to all sinks.
func (m *MultiSink) Publish(ctx context.Context, frame coretelemetry.Frame) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Publish(ctx, frame); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes all sinks.
func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
