// Package motor simulates the electromechanical behaviour of one brushed DC
// wheel motor: current draw, hall-encoder counts and winding temperature.
package motor

import (
	"math"
	"time"

	"github.com/zachAtSiftStack/tlmSim/core/noise"
)

// Direction is the commanded rotation direction.
type Direction int

const (
	Forward Direction = 1
	Reverse Direction = -1
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Nominal electrical parameters in mA. Each motor scatters these by
// constructionPct at build time so no two motors behave identically.
const (
	nominalSteadyCurrent  = 333.0
	nominalMaxCurrent     = 800.0
	nominalStallCurrent   = 1500.0
	nominalStartupSeconds = 0.5
	nominalMaxTempRise    = 40.0

	constructionPct = 10
	currentNoisePct = 10
	thermalNoisePct = 4
)

// Behavioural constants. The stall pin is intentionally un-perturbed: a hard
// mechanical stall saturates the driver at its current limit.
const (
	stallPinCurrent      = 1500.0
	faultDegradedCurrent = 950.0
	faultStallSeconds    = 4.0
	faultEncoderScale    = 0.3

	sigmoidSteepness = 10.0
	sigmoidMidpoint  = 0.5
	approachFactor   = 0.5

	thermalRateRun        = 0.01
	thermalRateFaultStall = 0.07
	thermalRateFaultRun   = 0.025
	thermalRateIdle       = 0.005

	absoluteZeroC = -273.15
)

// Telemetry is an immutable motor snapshot. Current carries the direction
// sign; the internal current magnitude is always non-negative.
type Telemetry struct {
	Current     float64
	Encoder     int64
	Temperature float64
}

// Motor holds the simulated state for one wheel. It is not safe for
// concurrent use; the control loop is its single writer.
type Motor struct {
	name string

	current      float64
	encoderTicks int64
	direction    Direction

	steadyStateCurrent float64
	maxCurrent         float64
	stallCurrent       float64
	startupDuration    float64 // seconds
	maxTemperatureRise float64

	ambient     float64
	temperature float64

	running bool
	started time.Time
	stalled bool
	fault   bool

	rng *noise.Stream
	now func() time.Time
}

// New builds a motor at ambient temperature with construction-time parameter
// scatter drawn from its private noise stream.
func New(name string, ambient float64, rng *noise.Stream) *Motor {
	return NewWithClock(name, ambient, rng, time.Now)
}

// NewWithClock is New with an injectable clock, used by deterministic tests.
func NewWithClock(name string, ambient float64, rng *noise.Stream, now func() time.Time) *Motor {
	return &Motor{
		name:               name,
		direction:          Forward,
		steadyStateCurrent: rng.Vary(nominalSteadyCurrent, constructionPct),
		maxCurrent:         rng.Vary(nominalMaxCurrent, constructionPct),
		stallCurrent:       rng.Vary(nominalStallCurrent, constructionPct),
		startupDuration:    rng.Vary(nominalStartupSeconds, constructionPct),
		maxTemperatureRise: rng.Vary(nominalMaxTempRise, constructionPct),
		ambient:            ambient,
		temperature:        ambient,
		rng:                rng,
		now:                now,
	}
}

// Name returns the motor identity.
func (m *Motor) Name() string { return m.name }

// Direction returns the commanded rotation direction.
func (m *Motor) Direction() Direction { return m.direction }

// Running reports whether the motor has been started and not yet stopped.
func (m *Motor) Running() bool { return m.running }

// Stalled reports whether the motor is held in a stall.
func (m *Motor) Stalled() bool { return m.stalled }

// Faulted reports whether the persistent fault flag is set.
func (m *Motor) Faulted() bool { return m.fault }

// MaxCurrent returns this motor's scattered startup surge current.
func (m *Motor) MaxCurrent() float64 { return m.maxCurrent }

// Start marks the motor running in the given direction, clears any stall and
// applies the startup surge. A faulted motor driven forward surges to its
// stall current instead.
func (m *Motor) Start(dir Direction) {
	m.direction = dir
	m.started = m.now()
	m.running = true
	m.stalled = false
	if m.fault && dir == Forward {
		m.current = m.stallCurrent
	} else {
		m.current = m.maxCurrent
	}
}

// Stop de-energizes the motor and resets direction to forward.
func (m *Motor) Stop() {
	m.current = 0
	m.direction = Forward
	m.running = false
	m.stalled = false
}

// Stall forces the stalled condition.
func (m *Motor) Stall() { m.stalled = true }

// Unstall clears the stalled condition and restarts the startup ramp. A
// stopped motor resumes updating from a fresh start.
func (m *Motor) Unstall() {
	m.stalled = false
	m.started = m.now()
	m.running = true
}

// InjectFault sets the persistent fault flag. Only forward driving is
// affected; the flag persists until ClearFault.
func (m *Motor) InjectFault() { m.fault = true }

// ClearFault clears the persistent fault flag.
func (m *Motor) ClearFault() { m.fault = false }

// Update advances the motor by one control tick using wall-clock elapsed time
// since Start. Encoder ticks accumulate only while running and not stalled.
func (m *Motor) Update(ambient float64) {
	m.ambient = ambient

	onRate := thermalRateRun
	switch {
	case m.stalled:
		m.current = stallPinCurrent
	case m.running:
		elapsed := m.now().Sub(m.started).Seconds()
		progress := elapsed / m.startupDuration
		ramp := sigmoid(progress)

		// Encoder rate follows the same ramp, scaled off the steady-state
		// current magnitude.
		rate := math.Trunc(math.Abs(m.steadyStateCurrent)/10) * ramp * 10

		if m.fault && m.direction == Forward {
			if elapsed < faultStallSeconds {
				m.current = m.rng.Vary(m.stallCurrent, currentNoisePct)
				rate = 0
				onRate = thermalRateFaultStall
			} else {
				m.current = m.rng.Vary(faultDegradedCurrent, currentNoisePct)
				rate *= faultEncoderScale
				onRate = thermalRateFaultRun
			}
		} else {
			target := m.steadyStateCurrent + (m.maxCurrent-m.steadyStateCurrent)*(1-ramp)
			m.current += (target - m.current) * approachFactor
			m.current = m.rng.Vary(m.current, currentNoisePct)
		}

		m.encoderTicks += int64(float64(m.direction) * rate)
	}
	if m.current < 0 {
		m.current = 0
	}

	if m.running {
		target := m.ambient + m.maxTemperatureRise
		m.temperature += m.rng.Vary((target-m.temperature)*onRate, thermalNoisePct)
	} else {
		m.temperature += m.rng.Vary((m.ambient-m.temperature)*thermalRateIdle, thermalNoisePct)
	}
	if m.temperature < absoluteZeroC {
		m.temperature = absoluteZeroC
	}
}

// Telemetry returns a read-only snapshot. It never mutates motor state.
func (m *Motor) Telemetry() Telemetry {
	return Telemetry{
		Current:     m.current * float64(m.direction),
		Encoder:     m.encoderTicks,
		Temperature: m.temperature,
	}
}

// sigmoid is the logistic startup ramp, centred at the configured midpoint.
func sigmoid(progress float64) float64 {
	return 1 / (1 + math.Exp(-sigmoidSteepness*(progress-sigmoidMidpoint)))
}
