package config

import (
	"fmt"

	"github.com/zachAtSiftStack/tlmSim/core/vehicle"
)

// SimConfig holds the simulation parameters.
type SimConfig struct {
	// AssetName labels the asset telemetry is published for.
	AssetName string `json:"asset_name"`
	// Seed is the top-level seed all noise streams derive from.
	Seed uint64 `json:"seed"`
	// AmbientTemperature is the environment temperature in degrees Celsius.
	AmbientTemperature float64 `json:"ambient_temperature"`
	// DurationSeconds bounds the run.
	DurationSeconds float64 `json:"duration_seconds"`
	// ControlHz is the control loop rate.
	ControlHz float64 `json:"control_hz"`
	// PublishHz is the telemetry publish rate.
	PublishHz float64 `json:"publish_hz"`
	// IdleWaitMS paces the scheduler poll loop.
	IdleWaitMS int `json:"idle_wait_ms"`
	// Voltage is the constant bus voltage reported on vehicle_50_hz.
	Voltage int `json:"voltage"`
	// InjectFault applies a persistent fault to motor_b at construction.
	InjectFault bool `json:"inject_fault"`
}

// SetDefaults applies the rover defaults.
func (c *SimConfig) SetDefaults() {
	if c.AssetName == "" {
		c.AssetName = "rover_1"
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.AmbientTemperature == 0 {
		c.AmbientTemperature = 25.0
	}
	if c.DurationSeconds == 0 {
		c.DurationSeconds = 60
	}
	if c.ControlHz == 0 {
		c.ControlHz = 50
	}
	if c.PublishHz == 0 {
		c.PublishHz = 10
	}
	if c.IdleWaitMS == 0 {
		c.IdleWaitMS = 1
	}
	if c.Voltage == 0 {
		c.Voltage = 12
	}
}

// Validate checks mandatory fields.
func (c SimConfig) Validate() error {
	if c.DurationSeconds <= 0 {
		return fmt.Errorf("duration_seconds must be positive")
	}
	if c.ControlHz <= 0 || c.PublishHz <= 0 {
		return fmt.Errorf("control_hz and publish_hz must be positive")
	}
	if c.IdleWaitMS < 0 {
		return fmt.Errorf("idle_wait_ms must not be negative")
	}
	return nil
}

// ScriptStep is one entry in the command script: issue the command, then
// wait for the delay before the next step.
type ScriptStep struct {
	Command      string  `json:"command"`
	DelaySeconds float64 `json:"delay_seconds"`
}

func validateScript(steps []ScriptStep) error {
	for i, s := range steps {
		if _, ok := vehicle.ParseCommand(s.Command); !ok {
			return fmt.Errorf("script step %d: unknown command %q", i, s.Command)
		}
		if s.DelaySeconds < 0 {
			return fmt.Errorf("script step %d: negative delay", i)
		}
	}
	return nil
}
