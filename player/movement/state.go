package movement

import "fmt"

// State is the movement state of a character. Exactly one state is current at any time.
type State uint8

const (
	StateGrounded State = iota
	StateAirborne
	StateWallclimb
	StateWallrun
	StateLedgeGrab
	StateSlide
	StateDropdown
	StateWallclutch
	StateFly
	StateLadderClimb

	stateCount
)

var stateNames = [stateCount]string{
	StateGrounded:    "Grounded",
	StateAirborne:    "Airborne",
	StateWallclimb:   "Wallclimb",
	StateWallrun:     "Wallrun",
	StateLedgeGrab:   "LedgeGrab",
	StateSlide:       "Slide",
	StateDropdown:    "Dropdown",
	StateWallclutch:  "Wallclutch",
	StateFly:         "Fly",
	StateLadderClimb: "LadderClimb",
}

// Valid returns true if s is one of the declared states.
func (s State) Valid() bool {
	return s < stateCount
}

func (s State) String() string {
	if s.Valid() {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// in returns true if s is any of the given states.
func (s State) in(states ...State) bool {
	for _, other := range states {
		if s == other {
			return true
		}
	}
	return false
}
