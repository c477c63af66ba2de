// Package vehicle implements the rover state machine: it owns the four wheel
// motors, maps operator commands to per-state motor directives and derives
// the digital GPIO byte.
package vehicle

import (
	"fmt"
	"time"

	"github.com/zachAtSiftStack/tlmSim/core/logger"
	"github.com/zachAtSiftStack/tlmSim/core/motor"
	"github.com/zachAtSiftStack/tlmSim/core/noise"
	"github.com/zachAtSiftStack/tlmSim/internal/eventbus"
)

// Event is a timestamped free-text log entry emitted on command receipt and
// state transitions. Subscribers forward it to the state_logs flow.
type Event struct {
	Time    time.Time
	Message string
}

// Config holds rover construction parameters.
type Config struct {
	// Seed is the top-level seed the per-motor noise streams derive from.
	Seed uint64
	// Ambient is the environment temperature in degrees Celsius.
	Ambient float64
	// InjectFault applies a persistent fault to motor_b at construction.
	InjectFault bool
}

var motorNames = [...]string{"motor_a", "motor_b", "motor_c", "motor_d"}

const commandQueueSize = 16

// Rover is the vehicle state machine. ControlTick and all accessors must run
// on the control goroutine; Command may be called from any goroutine and
// hands the decoded command to the control loop through a buffered channel.
type Rover struct {
	state    State
	previous State
	ambient  float64
	motors   []*motor.Motor
	gpio     byte

	commands chan Command
	events   *eventbus.TypedBus[Event]
	log      logger.Logger
	now      func() time.Time
}

// New builds a rover with four deterministically seeded motors, starting in
// the Idle state.
func New(cfg Config, log logger.Logger) *Rover {
	return NewWithClock(cfg, log, time.Now)
}

// NewWithClock is New with an injectable clock shared by all motors.
func NewWithClock(cfg Config, log logger.Logger, now func() time.Time) *Rover {
	r := &Rover{
		state:    StateIdle,
		previous: StateIdle,
		ambient:  cfg.Ambient,
		commands: make(chan Command, commandQueueSize),
		events:   eventbus.NewTyped[Event](),
		log:      log,
		now:      now,
	}
	for i, name := range motorNames {
		r.motors = append(r.motors, motor.NewWithClock(name, cfg.Ambient, noise.NewStream(cfg.Seed, uint64(i+1)), now))
	}
	if cfg.InjectFault {
		// The designated fault carrier is motor_b.
		r.motors[1].InjectFault()
	}
	r.gpio = gpioForState(r.state)
	return r
}

// Command decodes and enqueues an operator token. Unrecognized tokens are a
// silent no-op. The state change is observed by the control loop at the
// start of its next tick.
func (r *Rover) Command(token string) {
	cmd, ok := ParseCommand(token)
	if !ok {
		r.log.Debugf("ignoring unrecognized command %q", token)
		return
	}
	select {
	case r.commands <- cmd:
		r.log.Infof("command received: %s", cmd)
		r.events.Publish(Event{Time: r.now(), Message: fmt.Sprintf("Command received: %s", cmd)})
	default:
		r.log.Warnf("command queue full, dropping %s", cmd)
	}
}

// ControlTick runs one control cycle: drain pending commands, fire the
// one-shot transition action if the state changed, refresh the GPIO byte and
// advance every motor.
func (r *Rover) ControlTick() {
	r.drainCommands()
	if r.state != r.previous {
		r.applyTransition()
	}
	r.gpio = gpioForState(r.state)
	for _, m := range r.motors {
		m.Update(r.ambient)
	}
	r.previous = r.state
}

func (r *Rover) drainCommands() {
	for {
		select {
		case cmd := <-r.commands:
			r.state = cmd.TargetState()
		default:
			return
		}
	}
}

// applyTransition issues the per-state motor directives. It fires exactly
// once per state change.
func (r *Rover) applyTransition() {
	switch r.state {
	case StateForwardDrive:
		for _, m := range r.motors {
			m.Start(motor.Forward)
		}
	case StateReverseDrive:
		for _, m := range r.motors {
			m.Start(motor.Reverse)
		}
	case StateLeftTurn:
		r.motors[0].Start(motor.Forward)
		r.motors[1].Start(motor.Forward)
		r.motors[2].Start(motor.Reverse)
		r.motors[3].Start(motor.Reverse)
	case StateRightTurn:
		r.motors[0].Start(motor.Reverse)
		r.motors[1].Start(motor.Reverse)
		r.motors[2].Start(motor.Forward)
		r.motors[3].Start(motor.Forward)
	default:
		// Idle, Charging, Camera1, Camera2 and Fault all de-energize the
		// drivetrain.
		for _, m := range r.motors {
			m.Stop()
		}
	}
	msg := fmt.Sprintf("Vehicle transitioned to %s", r.state)
	r.log.Infof("%s", msg)
	r.events.Publish(Event{Time: r.now(), Message: msg})
}

// State returns the current vehicle state.
func (r *Rover) State() State { return r.state }

// GPIO returns the packed digital output byte as of the last control tick.
func (r *Rover) GPIO() byte { return r.gpio }

// Motors returns the wheel motors in wiring order (a, b, c, d).
func (r *Rover) Motors() []*motor.Motor { return r.motors }

// Events exposes the bus carrying command and transition log entries.
func (r *Rover) Events() *eventbus.TypedBus[Event] { return r.events }
