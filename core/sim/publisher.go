package sim

import (
	"context"
	"time"

	"github.com/zachAtSiftStack/tlmSim/core/logger"
	"github.com/zachAtSiftStack/tlmSim/core/telemetry"
	"github.com/zachAtSiftStack/tlmSim/core/vehicle"
)

// Publisher builds the periodic telemetry frames for a rover and hands them
// to the sink. Publish runs on the runner goroutine, interleaved with
// control ticks, so it reads rover state without synchronization.
type Publisher struct {
	rover   *vehicle.Rover
	sink    telemetry.Sink
	sys     *telemetry.SysLogSource
	runID   string
	voltage int
	log     logger.Logger
}

// NewPublisher wires a publisher to the rover and sink. voltage is the
// constant bus voltage reported on the vehicle_50_hz flow.
func NewPublisher(rover *vehicle.Rover, sink telemetry.Sink, sys *telemetry.SysLogSource, runID string, voltage int, log logger.Logger) *Publisher {
	return &Publisher{rover: rover, sink: sink, sys: sys, runID: runID, voltage: voltage, log: log}
}

// Publish emits one vehicle_10_hz batch, one vehicle_50_hz batch and, with a
// small probability, one sys_logs line.
func (p *Publisher) Publish(ctx context.Context, now time.Time) {
	frame := telemetry.Frame{Flow: telemetry.FlowVehicle10Hz, Run: p.runID, Timestamp: now}
	for _, m := range p.rover.Motors() {
		tm := m.Telemetry()
		frame.Values = append(frame.Values,
			telemetry.ChannelValue{Channel: telemetry.ChannelEncoder, Component: m.Name(), Value: tm.Encoder},
			telemetry.ChannelValue{Channel: telemetry.ChannelCurrent, Component: m.Name(), Value: tm.Current},
			telemetry.ChannelValue{Channel: telemetry.ChannelTemperature, Component: m.Name(), Value: tm.Temperature},
		)
	}
	frame.Values = append(frame.Values, telemetry.ChannelValue{
		Channel: telemetry.ChannelVehicleState,
		Value:   int(p.rover.State()),
	})
	p.send(ctx, frame)

	p.send(ctx, telemetry.Frame{
		Flow:      telemetry.FlowVehicle50Hz,
		Run:       p.runID,
		Timestamp: now,
		Values: []telemetry.ChannelValue{
			{Channel: telemetry.ChannelVoltage, Value: p.voltage},
			{Channel: telemetry.ChannelGPIO, Value: p.rover.GPIO()},
		},
	})

	if line, ok := p.sys.Next(); ok {
		p.send(ctx, telemetry.Frame{
			Flow:      telemetry.FlowSysLogs,
			Run:       p.runID,
			Timestamp: now,
			Values:    []telemetry.ChannelValue{{Channel: telemetry.ChannelSysLog, Value: line}},
		})
	}
}

func (p *Publisher) send(ctx context.Context, frame telemetry.Frame) {
	if err := p.sink.Publish(ctx, frame); err != nil {
		p.log.Errorf("publish %s: %v", frame.Flow, err)
	}
}
