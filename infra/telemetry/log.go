package telemetry

import (
	"context"

	coretelemetry "github.com/zachAtSiftStack/tlmSim/core/telemetry"
	"github.com/zachAtSiftStack/tlmSim/infra/logger"
)

// LogSink writes frames to the structured log. It is the default sink when
// no backend is enabled, so a bare `tlmsim` invocation still shows output.
type LogSink struct {
	log logger.Logger
}

// NewLogSink creates a sink logging under the given component name.
func NewLogSink(component string) *LogSink {
	return &LogSink{log: logger.New(component)}
}

func (s *LogSink) Publish(_ context.Context, frame coretelemetry.Frame) error {
	for _, v := range frame.Values {
		if v.Component != "" {
			s.log.Debugf("%s %s.%s=%v", frame.Flow, v.Component, v.Channel, v.Value)
		} else {
			s.log.Debugf("%s %s=%v", frame.Flow, v.Channel, v.Value)
		}
	}
	return nil
}

func (s *LogSink) Close() error { return nil }
