package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/input"
)

// ClutchState is the sub-state of a wallclutch.
type ClutchState struct {
	Elapsed float32
	// Velocity eases the vertical speed from a short hop into a slow slide.
	Velocity Tween
	// Wall is the cast that found the clutched wall.
	Wall CastResult
}

// startWallAction looks for a wall in front of an airborne character and performs the configured wall
// action against it.
func (m *Moveset) startWallAction(c *Character) bool {
	if m.Gear.Ammo(AbilityWallclimb) <= 0 {
		return false
	}
	f := c.Body.Frame()
	dist := max(c.Momentum/6, 0.75)
	cast := m.World.RayCast(f.Position, f.Forward(), dist)
	if !cast.Hit || !game.Float32ApproxEq(cast.Normal.Y(), 0) {
		return false
	}
	if cast.Normal.Mul(-1).Dot(f.Forward()) <= 0.7 {
		return false
	}
	if m.Config.ClutchEnabled && m.startWallclutch(c, cast) {
		return true
	}
	if !m.Input.Active(input.ActionWallAction) {
		return false
	}
	return m.performWallAction(c, cast)
}

func (m *Moveset) performWallAction(c *Character, wall CastResult) bool {
	if m.Config.WallAction == WallActionWallboost {
		return m.startWallboost(c)
	}
	return m.startWallclimb(c, wall)
}

// startWallboost converts a dash into an upward burst off the wall.
func (m *Moveset) startWallboost(c *Character) bool {
	vel := c.Body.Velocity()
	if !c.Dash.Active() || vel.Y() < m.Config.WallclimbThreshold {
		return false
	}
	c.resetFallSpeed()
	c.Body.SetVelocity(game.WithY(vel, max(vel.Y(), 0)+m.Config.WallboostForce))
	m.animate(AnimLongJump)
	m.sound(SoundFootstepFast, 1)
	m.Gear.DecrementAmmo(AbilityWallclimb)
	return true
}

// startWallclutch makes a dashing character hang on the wall for a moment.
func (m *Moveset) startWallclutch(c *Character, wall CastResult) bool {
	cfg := m.Config
	if !c.Dash.Active() || c.Body.Velocity().Y() < cfg.WallclimbThreshold*cfg.ClutchThresholdMultiplier {
		return false
	}
	c.Body.SetRotation(game.LookRotation(wall.Normal.Mul(-1)))
	c.Body.SetVelocity(mgl32.Vec3{0, cfg.ClutchVelocityFrom})
	c.Clutch = ClutchState{
		Velocity: NewTween(
			mgl32.Vec3{0, cfg.ClutchVelocityFrom},
			mgl32.Vec3{0, cfg.ClutchVelocityTo},
			cfg.ClutchVelocityTweenTime,
			game.InSine,
		),
		Wall: wall,
	}
	m.setState(c, StateWallclutch)
	m.animate(AnimWallclutch)
	return true
}

func (m *Moveset) stepWallclutch(c *Character, dt float32) {
	cfg := m.Config
	cl := &c.Clutch
	cl.Elapsed += dt
	vel, _ := cl.Velocity.Advance(dt)
	c.Body.SetVelocity(vel)

	held := m.Input.Active(input.ActionWallAction)
	if cl.Elapsed < cfg.ClutchMinTime || (held && cl.Elapsed < cfg.ClutchMaxTime) {
		return
	}

	m.resetDash(c)
	m.startDash(c)
	c.Body.SetVelocity(mgl32.Vec3{})
	m.setState(c, StateAirborne)
	if !held {
		m.Gear.DecrementAmmo(AbilityWallclimb)
		return
	}
	m.performWallAction(c, cl.Wall)
}
