package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/player/input"
)

// Land puts the character on the ground. It refills every ability, applies fall damage and turns a
// landing dash into a slide when the slide key is held. Calling Land more than once in the same tick
// has no further effect.
func (m *Moveset) Land(c *Character) {
	now := m.now()
	if c.LastLanded == now {
		return
	}
	cfg := m.Config

	damage := max(0, c.LastFallSpeed-cfg.FallDamageThreshold) * cfg.FallDamageMultiplier
	c.resetFallSpeed()
	c.LastLanded = now
	c.AirborneTime = 0
	c.VelocityLocked = false
	m.setState(c, StateGrounded)
	m.Gear.ResetAmmo()

	if c.Dash.Active() {
		damage = 0
		if m.Input.Held(input.ActionSlide) {
			m.startSlide(c)
		}
	}
	if damage > 0 {
		m.debugf("tick %d: fall damage %.1f", c.ticks, damage)
		m.DamageSelf(c, damage)
	}
}

// DamageSelf removes health from the character and respawns it once no health is left. It returns true
// if the character was respawned.
func (m *Moveset) DamageSelf(c *Character, amount float32) bool {
	c.Health -= amount
	if c.Health > 0 {
		return false
	}
	m.respawn(c)
	return true
}

func (m *Moveset) respawn(c *Character) {
	m.debugf("tick %d: respawning at %v", c.ticks, c.Spawn)

	m.resetGrapple(c)
	c.Body.Kinematic = false
	c.Body.Shrunk = false
	c.Body.SetPosition(c.Spawn)
	c.Body.SetVelocity(mgl32.Vec3{})
	c.Body.Contacts = Contacts{}
	c.Momentum = 0
	c.VelocityLocked = false
	c.AirborneTime = 0
	c.Health = m.Config.MaxHealth
	c.resetFallSpeed()
	c.resetTimers()
	m.Gear.ResetAmmo()
	m.setState(c, StateAirborne)

	m.Input.AddInputLock("respawn", m.Config.RespawnLockTime)
	m.animate(AnimFall)
	m.sound(SoundDeath, 1)
	if m.Options.OnRespawn != nil {
		m.Options.OnRespawn(c)
	}
}
