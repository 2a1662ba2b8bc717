package input

// Event is a discrete control signal delivered to the simulation
type Event uint8

// An Event is one of:
const (
	None Event = iota
	BrightnessUp
	BrightnessDown
	ReseedRequested
	SpeedUp
	SpeedDown
	RandomizeColor
	Quit
)

var eventNames = map[Event]string{
	None:            "none",
	BrightnessUp:    "brightness-up",
	BrightnessDown:  "brightness-down",
	ReseedRequested: "reseed",
	SpeedUp:         "speed-up",
	SpeedDown:       "speed-down",
	RandomizeColor:  "randomize-color",
	Quit:            "quit",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "unknown"
}

// Source delivers events until it is closed
type Source interface {
	Events() <-chan Event
}
