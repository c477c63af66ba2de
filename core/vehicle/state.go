package vehicle

// State is one of the nine closed vehicle states. The numeric values match
// the telemetry enum keys and must not be reordered.
type State int

const (
	StateFault State = iota
	StateIdle
	StateForwardDrive
	StateReverseDrive
	StateLeftTurn
	StateRightTurn
	StateCharging
	StateCamera1
	StateCamera2
)

// String returns the human-readable state name used in event logs and the
// telemetry enum.
func (s State) String() string {
	switch s {
	case StateFault:
		return "Fault"
	case StateIdle:
		return "Idle"
	case StateForwardDrive:
		return "Forward Drive"
	case StateReverseDrive:
		return "Reverse Drive"
	case StateLeftTurn:
		return "Left Turn"
	case StateRightTurn:
		return "Right Turn"
	case StateCharging:
		return "Charging"
	case StateCamera1:
		return "Camera 1"
	case StateCamera2:
		return "Camera 2"
	default:
		return "Unknown"
	}
}
