package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zachAtSiftStack/tlmSim/core/logger"
	"github.com/zachAtSiftStack/tlmSim/core/telemetry"
	"github.com/zachAtSiftStack/tlmSim/core/vehicle"
)

type captureSink struct {
	frames []telemetry.Frame
}

func (s *captureSink) Publish(_ context.Context, f telemetry.Frame) error {
	s.frames = append(s.frames, f)
	return nil
}

func (s *captureSink) Close() error { return nil }

func (s *captureSink) byFlow(flow string) []telemetry.Frame {
	var out []telemetry.Frame
	for _, f := range s.frames {
		if f.Flow == flow {
			out = append(out, f)
		}
	}
	return out
}

func TestPublisherEmitsMotorAndVehicleFrames(t *testing.T) {
	clk := newFakeClock()
	rover := vehicle.NewWithClock(vehicle.Config{Seed: 42, Ambient: 25}, logger.Nop{}, clk.Now)
	sink := &captureSink{}
	p := NewPublisher(rover, sink, telemetry.NewSysLogSource(42), "run-1", 12, logger.Nop{})

	p.Publish(context.Background(), clk.Now())

	tenHz := sink.byFlow(telemetry.FlowVehicle10Hz)
	require.Len(t, tenHz, 1)
	// 4 motors x 3 channels + vehicle_state
	assert.Len(t, tenHz[0].Values, 13)
	assert.Equal(t, "run-1", tenHz[0].Run)

	last := tenHz[0].Values[len(tenHz[0].Values)-1]
	assert.Equal(t, telemetry.ChannelVehicleState, last.Channel)
	assert.Equal(t, int(vehicle.StateIdle), last.Value)

	fiftyHz := sink.byFlow(telemetry.FlowVehicle50Hz)
	require.Len(t, fiftyHz, 1)
	require.Len(t, fiftyHz[0].Values, 2)
	assert.Equal(t, 12, fiftyHz[0].Values[0].Value)
	assert.Equal(t, rover.GPIO(), fiftyHz[0].Values[1].Value)
}

func TestPublisherSysLogRate(t *testing.T) {
	clk := newFakeClock()
	rover := vehicle.NewWithClock(vehicle.Config{Seed: 42, Ambient: 25}, logger.Nop{}, clk.Now)
	sink := &captureSink{}
	p := NewPublisher(rover, sink, telemetry.NewSysLogSource(42), "run-1", 12, logger.Nop{})

	const publishes = 2000
	for i := 0; i < publishes; i++ {
		clk.Sleep(100 * time.Millisecond)
		p.Publish(context.Background(), clk.Now())
	}
	sys := sink.byFlow(telemetry.FlowSysLogs)
	// nominal 10% of publishes
	assert.Greater(t, len(sys), publishes/20)
	assert.Less(t, len(sys), publishes/5)
}

func TestPublisherReportsSignedCurrents(t *testing.T) {
	clk := newFakeClock()
	rover := vehicle.NewWithClock(vehicle.Config{Seed: 42, Ambient: 25}, logger.Nop{}, clk.Now)
	sink := &captureSink{}
	p := NewPublisher(rover, sink, telemetry.NewSysLogSource(1), "run-1", 12, logger.Nop{})

	rover.Command("reverse")
	rover.ControlTick()
	p.Publish(context.Background(), clk.Now())

	frame := sink.byFlow(telemetry.FlowVehicle10Hz)[0]
	for _, v := range frame.Values {
		if v.Channel == telemetry.ChannelCurrent {
			assert.Negative(t, v.Value.(float64), "component %s", v.Component)
		}
	}
}
