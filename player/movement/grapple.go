package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/input"
)

// GrappleState is the state of the grappling hook.
type GrappleState struct {
	Active bool
	HasHit bool
	// HitDelay is how long the hook travels before attaching.
	HitDelay  float32
	Duration  float32
	MaxLength float32
	Target    mgl32.Vec3
}

func (m *Moveset) startGrapple(c *Character) bool {
	cfg := m.Config
	if !m.Gear.AbilityEnabled(AbilityGrappler) || m.Gear.Ammo(AbilityGrappler) < 1 || c.Grapple.Active {
		return false
	}
	origin := c.Body.Frame().Position
	cast := m.World.RayCast(origin, game.DirectionVector(c.Camera.Yaw, c.Camera.Pitch), cfg.GrappleMaxDistance)
	if !cast.Hit {
		return false
	}
	if !c.State.in(StateGrounded, StateSlide) {
		m.Gear.DecrementAmmo(AbilityGrappler)
	}
	delay := max(game.Clamp01(cast.Distance/cfg.GrappleMaxDistance)*cfg.GrappleAttachTime, cfg.GrappleMinAttachTime)
	c.Grapple = GrappleState{
		Active:    true,
		HitDelay:  delay,
		MaxLength: delay + cfg.GrappleMaxYankTime,
		Target:    cast.Point,
	}
	m.sound(SoundGrappleThrow, 1)
	m.sound(SoundGrappleThrowSpring, 0.4)
	return true
}

func (m *Moveset) stepGrapple(c *Character, dt float32) {
	g := &c.Grapple
	if !g.Active {
		return
	}
	g.Duration += dt
	held := m.Input.Active(input.ActionCoreUse)
	if g.Duration <= g.HitDelay {
		if !held {
			m.resetGrapple(c)
		}
		return
	}
	if !g.HasHit {
		g.HasHit = true
		m.sound(SoundGrapplePull, 1)
	}
	if held && g.Duration < g.MaxLength {
		return
	}

	yank := game.Map(g.Duration-g.HitDelay, 0, g.MaxLength-g.HitDelay, 0, 1)
	force := game.Clamp01(1 - yank + 0.25)
	dir := game.SafeNormalize(g.Target.Sub(c.Body.Frame().Position))
	c.Body.SetVelocity(c.Body.Velocity().Add(dir.Mul(force * m.Config.GrappleYankForce)))
	m.resetGrapple(c)
	m.sound(SoundGrappleThrowSpring, 0.4)
}

func (m *Moveset) resetGrapple(c *Character) {
	c.Grapple = GrappleState{}
}
