// Package telemetry defines the frame model handed to telemetry sinks. A
// frame is one named batch of timestamped channel values; sinks decide how
// frames map onto their backend.
package telemetry

import (
	"context"
	"time"
)

// Flow names published by the simulator.
const (
	FlowVehicle10Hz = "vehicle_10_hz"
	FlowVehicle50Hz = "vehicle_50_hz"
	FlowStateLogs   = "state_logs"
	FlowSysLogs     = "sys_logs"
)

// Channel names shared across flows.
const (
	ChannelEncoder      = "encoder"
	ChannelCurrent      = "current"
	ChannelTemperature  = "temperature"
	ChannelVehicleState = "vehicle_state"
	ChannelVoltage      = "voltage"
	ChannelGPIO         = "gpio"
	ChannelStateLog     = "state_log"
	ChannelSysLog       = "sys_log"
)

// ChannelValue is one channel reading. Component qualifies channels shared
// by several subsystems (one per motor); it is empty for vehicle-level
// channels.
type ChannelValue struct {
	Channel   string `json:"channel"`
	Component string `json:"component,omitempty"`
	Value     any    `json:"value"`
}

// Frame is a named batch of channel values sampled at one instant. Run
// identifies the simulation run the frame belongs to.
type Frame struct {
	Flow      string         `json:"flow"`
	Run       string         `json:"run,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Values    []ChannelValue `json:"values"`
}

// Sink accepts telemetry frames. Implementations must be safe for
// concurrent use: the publish task and the event forwarder run on separate
// goroutines.
type Sink interface {
	Publish(ctx context.Context, frame Frame) error
	Close() error
}

// NopSink discards every frame.
type NopSink struct{}

func (NopSink) Publish(context.Context, Frame) error { return nil }
func (NopSink) Close() error                         { return nil }
