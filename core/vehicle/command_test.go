package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommandRoundTrip(t *testing.T) {
	for token, cmd := range commandTokens {
		got, ok := ParseCommand(token)
		assert.True(t, ok, token)
		assert.Equal(t, cmd, got)
		assert.Equal(t, token, cmd.String())
	}
}

func TestParseCommandRejectsUnknown(t *testing.T) {
	for _, token := range []string{"", "FORWARD", "drive", "left turn"} {
		_, ok := ParseCommand(token)
		assert.False(t, ok, token)
	}
}

func TestCommandTargetStates(t *testing.T) {
	cases := map[Command]State{
		CommandForward:     StateForwardDrive,
		CommandIdle:        StateIdle,
		CommandReverse:     StateReverseDrive,
		CommandLeftTurn:    StateLeftTurn,
		CommandRightTurn:   StateRightTurn,
		CommandCharge:      StateCharging,
		CommandCamera1:     StateCamera1,
		CommandCamera2:     StateCamera2,
		CommandInjectFault: StateFault,
	}
	for cmd, want := range cases {
		assert.Equal(t, want, cmd.TargetState(), cmd.String())
	}
}

func TestStateNamesMatchTelemetryEnum(t *testing.T) {
	want := map[State]string{
		StateFault:        "Fault",
		StateIdle:         "Idle",
		StateForwardDrive: "Forward Drive",
		StateReverseDrive: "Reverse Drive",
		StateLeftTurn:     "Left Turn",
		StateRightTurn:    "Right Turn",
		StateCharging:     "Charging",
		StateCamera1:      "Camera 1",
		StateCamera2:      "Camera 2",
	}
	for s, name := range want {
		assert.Equal(t, name, s.String())
	}
	// enum keys are positional, 0-8
	assert.Equal(t, 0, int(StateFault))
	assert.Equal(t, 8, int(StateCamera2))
}
