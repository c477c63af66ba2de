package vehicle

// Command is an operator command decoded once at the boundary. Each command
// maps 1:1 to a target vehicle state.
type Command int

const (
	CommandForward Command = iota
	CommandIdle
	CommandReverse
	CommandLeftTurn
	CommandRightTurn
	CommandCharge
	CommandCamera1
	CommandCamera2
	CommandInjectFault
)

var commandTokens = map[string]Command{
	"forward":      CommandForward,
	"idle":         CommandIdle,
	"reverse":      CommandReverse,
	"left_turn":    CommandLeftTurn,
	"right_turn":   CommandRightTurn,
	"charge":       CommandCharge,
	"camera_1":     CommandCamera1,
	"camera_2":     CommandCamera2,
	"inject_fault": CommandInjectFault,
}

// ParseCommand decodes an operator token. Unrecognized tokens return ok=false
// and are treated as a no-op by the rover.
func ParseCommand(token string) (Command, bool) {
	c, ok := commandTokens[token]
	return c, ok
}

// TargetState returns the vehicle state the command transitions to.
func (c Command) TargetState() State {
	switch c {
	case CommandForward:
		return StateForwardDrive
	case CommandIdle:
		return StateIdle
	case CommandReverse:
		return StateReverseDrive
	case CommandLeftTurn:
		return StateLeftTurn
	case CommandRightTurn:
		return StateRightTurn
	case CommandCharge:
		return StateCharging
	case CommandCamera1:
		return StateCamera1
	case CommandCamera2:
		return StateCamera2
	case CommandInjectFault:
		return StateFault
	default:
		return StateIdle
	}
}

func (c Command) String() string {
	for tok, cmd := range commandTokens {
		if cmd == c {
			return tok
		}
	}
	return "unknown"
}
