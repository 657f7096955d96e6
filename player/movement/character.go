package movement

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
)

// never is a timestamp far enough in the past for every cooldown to have elapsed.
const never = -1e9

// Camera is the view orientation of a character in degrees.
type Camera struct {
	Yaw   float32
	Pitch float32
}

// Character holds the full movement state of one player-controlled character. It is stepped by a
// Moveset and must not be shared between goroutines while stepping.
type Character struct {
	Body   Body
	State  State
	Camera Camera

	Spawn  mgl32.Vec3
	Health float32

	// Momentum is the scalar speed reservoir the ground and air locomotion build up and redirect.
	Momentum float32
	// VelocityLocked reduces how fast input may redirect horizontal velocity. It is set by long jumps
	// and cleared on landing.
	VelocityLocked bool

	AirborneTime float32
	// LastFallSpeed is the highest downward speed since the last reset, used for fall damage.
	LastFallSpeed float32
	LastLanded    float64

	Jump      JumpState
	Dash      DashState
	Wallclimb WallclimbState
	Wallrun   WallrunState
	Ledge     LedgeState
	Dropdown  DropdownState
	Clutch    ClutchState
	Grapple   GrappleState
	Ladder    LadderState

	ticks uint64
}

// NewCharacter returns an airborne character at its spawn position.
func NewCharacter(spawn mgl32.Vec3, maxHealth float32) *Character {
	c := &Character{
		Body:   NewBody(spawn),
		State:  StateAirborne,
		Spawn:  spawn,
		Health: maxHealth,
	}
	c.resetTimers()
	return c
}

// Ticks returns the amount of times the character has been stepped.
func (c *Character) Ticks() uint64 {
	return c.ticks
}

// HorizontalSpeed returns the speed of the character on the XZ plane.
func (c *Character) HorizontalSpeed() float32 {
	return game.HorizontalLen(c.Body.Velocity())
}

func (c *Character) resetFallSpeed() {
	c.LastFallSpeed = 0
}

func (c *Character) resetTimers() {
	c.LastLanded = never
	c.Dash = DashState{Charge: -1, Start: never}
	c.Ladder = LadderState{Last: never}
	c.Jump = JumpState{Side: "L"}
	c.Wallclimb = WallclimbState{}
	c.Wallrun = WallrunState{}
	c.Ledge = LedgeState{}
	c.Dropdown = DropdownState{}
	c.Clutch = ClutchState{}
	c.Grapple = GrappleState{}
}

// Debug returns an ordered snapshot of the character for logging and debug overlays.
func (c *Character) Debug() *orderedmap.OrderedMap[string, any] {
	m := orderedmap.NewOrderedMap[string, any]()
	m.Set("tick", c.ticks)
	m.Set("state", c.State.String())
	m.Set("pos", c.Body.Position())
	m.Set("vel", c.Body.Velocity())
	m.Set("hSpeed", c.HorizontalSpeed())
	m.Set("momentum", c.Momentum)
	m.Set("health", c.Health)
	m.Set("airborneTime", c.AirborneTime)
	m.Set("lastFallSpeed", c.LastFallSpeed)
	m.Set("floor", c.Body.Contacts.Floor)
	m.Set("dash", c.Dash.Active())
	m.Set("jumpTimer", c.Jump.Timer)
	m.Set("grapple", c.Grapple.Active)
	return m
}
