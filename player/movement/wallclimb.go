package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/input"
)

// WallclimbState is the sub-state of a wallclimb.
type WallclimbState struct {
	Timer     float32
	FailTimer float32
	// Far is true while the character is still being pulled towards a wall that was found far away.
	Far bool
}

func (m *Moveset) startWallclimb(c *Character, wall CastResult) bool {
	cfg := m.Config
	vel := c.Body.Velocity()
	if vel.Y() < cfg.WallclimbThreshold {
		return false
	}
	if !m.Prefs.HoldWallclimb {
		m.Input.KeyReleased(input.ActionWallAction, true)
	}
	f := c.Body.Frame()
	c.Body.SetRotation(game.LookRotation(wall.Normal.Mul(-1)))
	c.resetFallSpeed()
	c.Body.SetVelocity(game.WithY(vel, max(vel.Y(), cfg.WallclimbMinSpeed)))
	m.Gear.DecrementAmmo(AbilityWallclimb)
	m.setState(c, StateWallclimb)
	c.Wallclimb = WallclimbState{
		Timer: cfg.WallclimbLength,
		Far:   game.HorizontalLen(wall.Point.Sub(f.Position)) > 0.75,
	}
	return true
}

func (m *Moveset) stepWallclimb(c *Character, dt float32) {
	cfg := m.Config
	w := &c.Wallclimb
	touching := c.Body.Contacts.Wallclimb
	floor := c.Body.Contacts.Floor

	if (!touching && w.FailTimer >= cfg.WallclimbCoyoteTime) ||
		(m.Prefs.HoldWallclimb && !m.Input.Active(input.ActionWallAction)) ||
		w.Timer <= 0 {
		m.setState(c, StateAirborne)
		if floor {
			m.Land(c)
		}
		return
	}
	if !touching || floor {
		w.FailTimer += dt
	}
	w.Timer -= dt

	c.resetFallSpeed()
	c.Body.AddForce(m.Config.GravityVec(), dt)
	rot := c.Body.Rotation()
	local := rot.Inverse().Rotate(c.Body.Velocity())
	c.Body.SetVelocity(rot.Rotate(mgl32.Vec3{local.X() * (-dt / 40), local.Y(), 0}))
	progress := w.Timer / cfg.WallclimbLength
	m.animationSpeed(cfg.WallclimbProgressionCurve.Evaluate(progress))

	f := c.Body.RawFrame()
	reach := float32(3)
	if w.Far {
		reach = 8
	}
	if cast := m.World.RayCast(f.Position, f.Forward(), reach); cast.Hit {
		pull := (1 - progress) * 4
		t := game.Clamp01(dt * 5)
		if w.Far {
			t = game.Clamp01(pull)
		}
		c.Body.SetPosition(game.LerpVec3(f.Position, cast.Point.Add(f.Back().Mul(0.5)), t))
		if w.Far && pull >= 1 {
			w.Far = false
		}
	}

	height := 2.75*(game.Clamp01(1-math32.Abs(local.Y()/5))+math32.Abs(local.Y()/20)) + (1 - progress)
	m.probeLedge(c, height, GrabLedge, true)
}

// wallclimbStep pushes the character up the wall on every step of the climbing animation.
func (m *Moveset) wallclimbStep(c *Character) {
	if c.State != StateWallclimb {
		return
	}
	cfg := m.Config
	c.Body.SetVelocity(c.Body.Velocity().Add(game.Up.Mul(c.Wallclimb.Timer / cfg.WallclimbLength * cfg.WallclimbStepStrength)))
	m.sound(SoundFootstepFast, 1)
}
