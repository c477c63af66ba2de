// Package app wires the rover, scheduler, sinks and metrics together from
// the loaded configuration.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zachAtSiftStack/tlmSim/config"
	"github.com/zachAtSiftStack/tlmSim/core/sim"
	coretelemetry "github.com/zachAtSiftStack/tlmSim/core/telemetry"
	"github.com/zachAtSiftStack/tlmSim/core/vehicle"
	"github.com/zachAtSiftStack/tlmSim/infra/logger"
	"github.com/zachAtSiftStack/tlmSim/infra/metrics"
	infratelemetry "github.com/zachAtSiftStack/tlmSim/infra/telemetry"
)

// Service owns a configured simulation run.
type Service struct {
	cfg    *config.Config
	rover  *vehicle.Rover
	runner *sim.Runner
	sink   coretelemetry.Sink
	sm     *metrics.SimMetrics
	log    logger.Logger
	runID  string
}

// New builds a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coretelemetry.Sink
	if cfg.Influx.Enabled {
		sinks = append(sinks, infratelemetry.NewInfluxSinkWithFallback(cfg.Influx))
	}
	if cfg.MQTT.Enabled {
		s, err := infratelemetry.NewMQTTSink(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt sink: %w", err)
		}
		sinks = append(sinks, s)
	}
	if len(sinks) == 0 {
		sinks = append(sinks, infratelemetry.NewLogSink("telemetry"))
	}
	var sink coretelemetry.Sink
	if len(sinks) == 1 {
		sink = sinks[0]
	} else {
		sink = infratelemetry.NewMultiSink(sinks...)
	}

	sm, err := metrics.NewSimMetrics(nil)
	if err != nil {
		return nil, fmt.Errorf("sim metrics: %w", err)
	}
	sink = metrics.NewCountingSink(sink, sm)

	runID := fmt.Sprintf("%s-%s", cfg.Sim.AssetName, uuid.NewString())
	rover := vehicle.New(vehicle.Config{
		Seed:        cfg.Sim.Seed,
		Ambient:     cfg.Sim.AmbientTemperature,
		InjectFault: cfg.Sim.InjectFault,
	}, logger.New("rover"))

	publisher := sim.NewPublisher(rover, sink,
		coretelemetry.NewSysLogSource(cfg.Sim.Seed), runID, cfg.Sim.Voltage, logger.New("publisher"))

	tasks := []sim.Task{
		{
			Name:     "control",
			Interval: hzInterval(cfg.Sim.ControlHz),
			Run: func(time.Time) {
				start := time.Now()
				rover.ControlTick()
				sm.ControlTicks.Inc()
				sm.TickDuration.Observe(time.Since(start).Seconds())
			},
		},
		{
			Name:     "publish",
			Interval: hzInterval(cfg.Sim.PublishHz),
			Run: func(now time.Time) {
				publisher.Publish(context.Background(), now)
			},
		},
	}
	runner := sim.NewRunner(tasks, time.Duration(cfg.Sim.IdleWaitMS)*time.Millisecond, logger.New("runner"))

	return &Service{
		cfg:    cfg,
		rover:  rover,
		runner: runner,
		sink:   sink,
		sm:     sm,
		log:    logg,
		runID:  runID,
	}, nil
}

// Rover exposes the vehicle for command injection.
func (s *Service) Rover() *vehicle.Rover { return s.rover }

// RunID returns the identity tag attached to all published frames.
func (s *Service) RunID() string { return s.runID }

// Run executes the simulation until the configured duration elapses or the
// context is cancelled. The command script, event forwarder and metrics
// server run on their own goroutines for the lifetime of the run.
func (s *Service) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sub := s.rover.Events().Subscribe()
	go s.forwardEvents(ctx, sub)
	defer s.rover.Events().Unsubscribe(sub)

	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	go s.runScript(ctx)

	s.log.Infof("starting run %s", s.runID)
	duration := time.Duration(s.cfg.Sim.DurationSeconds * float64(time.Second))
	return s.runner.Run(ctx, duration)
}

// Stop requests a cooperative shutdown of the run loop.
func (s *Service) Stop() { s.runner.Stop() }

// Close releases the sink.
func (s *Service) Close() error {
	s.rover.Events().Close()
	return s.sink.Close()
}

// forwardEvents turns rover log events into state_logs frames.
func (s *Service) forwardEvents(ctx context.Context, sub <-chan vehicle.Event) {
	for {
		select {
		case e, ok := <-sub:
			if !ok {
				return
			}
			frame := coretelemetry.Frame{
				Flow:      coretelemetry.FlowStateLogs,
				Run:       s.runID,
				Timestamp: e.Time,
				Values:    []coretelemetry.ChannelValue{{Channel: coretelemetry.ChannelStateLog, Value: e.Message}},
			}
			if err := s.sink.Publish(ctx, frame); err != nil {
				s.log.Errorf("publish state log: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// runScript issues the configured command sequence against the rover.
func (s *Service) runScript(ctx context.Context) {
	for _, step := range s.cfg.Script {
		s.rover.Command(step.Command)
		delay := time.Duration(step.DelaySeconds * float64(time.Second))
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return
		}
	}
}

func hzInterval(hz float64) time.Duration {
	return time.Duration(float64(time.Second) / hz)
}
