package movement

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/player/input"
)

// World is the spatial query surface the moveset probes the environment with.
type World interface {
	// RayCast casts a ray from origin along dir (which does not need to be normalized) for at most
	// maxDist units. Colliders containing the origin are ignored.
	RayCast(origin, dir mgl32.Vec3, maxDist float32) CastResult
	// ShapeCast sweeps shape, oriented by orientation, from origin along dir for at most maxDist units.
	ShapeCast(origin, dir mgl32.Vec3, maxDist float32, shape Shape, orientation mgl32.Quat) CastResult
	// OverlapCheck returns true if any solid intersects the volume.
	OverlapCheck(volume cube.BBox) bool
}

// Interactables exposes the attachable world objects, such as ladders.
type Interactables interface {
	// TouchingLadder returns the closest ladder within radius of origin.
	TouchingLadder(origin mgl32.Vec3, radius float32) (Ladder, bool)
}

// Animator plays first-person view model animations.
type Animator interface {
	SetCurrentAnimation(key string)
	CurrentAnimation() string
	SetAnimationSpeed(speed float32)
}

// Gear tracks the per-ability charges of a character.
type Gear interface {
	// Ammo returns the remaining charges of the ability.
	Ammo(a Ability) int
	// DecrementAmmo consumes a charge. It never takes the ammo below zero and returns false if no charge
	// was left.
	DecrementAmmo(a Ability) bool
	// ResetAmmo refills every ability except the ones given.
	ResetAmmo(except ...Ability)
	// AbilityEnabled returns true if the ability is unlocked by the equipped gear.
	AbilityEnabled(a Ability) bool
}

// Feedback receives the audible and visual side effects of movement.
type Feedback interface {
	PlaySound(name string, volume float32)
	UpdateHUD(h HUD)
}

// Input is the view of the action dispatcher the moveset reads from.
type Input interface {
	Active(a input.Action) bool
	Held(a input.Action) bool
	KeyReleased(a input.Action, immediate bool)
	MoveVector() mgl32.Vec3
	AddInputLock(id string, duration float32)
}

// Trials is the optional time-trial controller a character may be running.
type Trials interface {
	Active() bool
	Restart()
	Stop()
}

// Interactor handles the interact action for world objects the moveset does not know about. It returns
// false if nothing was interacted with.
type Interactor interface {
	Interact(origin, forward mgl32.Vec3) bool
}

// Preferences are player toggles polled from the settings every tick.
type Preferences struct {
	// HoldWallclimb keeps a wallclimb going only while the wall action is held.
	HoldWallclimb bool
	// HoldWallrun keeps a wallrun going only while the wallrun action is held.
	HoldWallrun bool
}

// Ability is a gear-backed ability with an ammo counter.
type Ability uint8

const (
	AbilityWallrun Ability = iota
	AbilityWallclimb
	AbilityJump
	AbilityWallKick
	AbilityGrappler
)

// Abilities returns every ability in declaration order.
func Abilities() []Ability {
	return []Ability{AbilityWallrun, AbilityWallclimb, AbilityJump, AbilityWallKick, AbilityGrappler}
}

func (a Ability) String() string {
	switch a {
	case AbilityWallrun:
		return "Wallrun"
	case AbilityWallclimb:
		return "Wallclimb"
	case AbilityJump:
		return "Jump"
	case AbilityWallKick:
		return "WallKick"
	case AbilityGrappler:
		return "Grappler"
	}
	return "Unknown"
}
