package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGPIOByState(t *testing.T) {
	cases := []struct {
		state State
		want  byte
	}{
		{StateIdle, 0},
		{StateFault, GPIO12V},
		{StateForwardDrive, GPIO12V},
		{StateReverseDrive, GPIO12V},
		{StateLeftTurn, GPIO12V},
		{StateRightTurn, GPIO12V},
		{StateCharging, GPIO12V | GPIOCharge},
		{StateCamera1, GPIO12V | GPIOCamera1 | GPIOLED1},
		{StateCamera2, GPIO12V | GPIOCamera2 | GPIOLED2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, gpioForState(tc.state), "state %s", tc.state)
	}
}

func TestGPIOTracksStateAcrossTicks(t *testing.T) {
	r, _ := newTestRover(Config{Seed: 42, Ambient: 25})
	r.Command("camera_2")
	r.ControlTick()
	assert.Equal(t, GPIO12V|GPIOCamera2|GPIOLED2, r.GPIO())

	r.Command("idle")
	r.ControlTick()
	assert.Zero(t, r.GPIO())
}

func TestHeaterBitsAlwaysClear(t *testing.T) {
	for s := StateFault; s <= StateCamera2; s++ {
		assert.Zero(t, gpioForState(s)&(GPIOHeater1|GPIOHeater2), "state %s", s)
	}
}
