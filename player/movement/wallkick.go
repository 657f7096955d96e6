package movement

import (
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/input"
)

// startWallKick kicks off a wall behind a dashing airborne character.
func (m *Moveset) startWallKick(c *Character) bool {
	cfg := m.Config
	vel := c.Body.Velocity()
	if m.Gear.Ammo(AbilityWallKick) < 1 || vel.Y() <= cfg.WallKickMinFallSpeed || !c.Dash.Active() {
		return false
	}
	f := c.Body.Frame()
	if !m.World.RayCast(f.Position, f.Back(), cfg.WallKickProbeDistance).Hit {
		return false
	}
	if c.State == StateDropdown {
		c.Dropdown.Active = false
		m.resetCollider(c)
		m.setState(c, StateAirborne)
	}
	c.Body.SetVelocity(game.WithY(f.Forward().Mul(cfg.WallKickForwardSpeed), max(vel.Y(), cfg.WallKickMinVerticalSpeed)))
	m.Gear.DecrementAmmo(AbilityWallKick)
	m.Input.KeyReleased(input.ActionJump, true)
	m.animate(AnimJump + "R")
	c.Jump.Timer = cfg.WallKickJumpTimer
	m.sound(SoundFootstepFast, 1)
	return true
}
