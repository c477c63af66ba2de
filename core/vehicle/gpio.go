package vehicle

// Digital output bit assignments for the packed GPIO byte.
const (
	GPIO12V     byte = 1 << 0
	GPIOCharge  byte = 1 << 1
	GPIOLED1    byte = 1 << 2
	GPIOLED2    byte = 1 << 3
	GPIOCamera1 byte = 1 << 4
	GPIOCamera2 byte = 1 << 5
	GPIOHeater1 byte = 1 << 6
	GPIOHeater2 byte = 1 << 7
)

// gpioForState derives the GPIO byte from the vehicle state alone. The 12V
// rail is energized whenever the vehicle is not idle; each camera brings up
// its paired LED.
func gpioForState(s State) byte {
	var g byte
	if s != StateIdle {
		g |= GPIO12V
	}
	switch s {
	case StateCharging:
		g |= GPIOCharge
	case StateCamera1:
		g |= GPIOCamera1 | GPIOLED1
	case StateCamera2:
		g |= GPIOCamera2 | GPIOLED2
	}
	return g
}
