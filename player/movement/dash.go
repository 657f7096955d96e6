package movement

import (
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/input"
)

// DashState is the coil charge of a character.
type DashState struct {
	// Charge is the time the dash has been active for, or negative while no dash is active.
	Charge float32
	// Start is when the dash cooldown started.
	Start float64
}

// Active returns true while a dash charge is held.
func (d DashState) Active() bool {
	return d.Charge >= 0
}

func (m *Moveset) startDash(c *Character) bool {
	if c.State == StateFly || m.since(c.Dash.Start) <= m.Config.DashCooldown {
		return false
	}
	if c.State == StateAirborne {
		m.animate(AnimCoil)
	}
	c.Dash.Charge = 0
	if c.State == StateGrounded {
		m.startSlide(c)
	}
	return true
}

func (m *Moveset) stepDash(c *Character, dt float32) {
	length := m.Config.DashLengthAirborne
	if c.State == StateGrounded {
		length = m.Config.DashLengthGrounded
	}
	c.Dash.Charge += dt
	if c.Dash.Charge >= length {
		m.endDash(c)
		c.Dash.Start = m.now()
	}
}

func (m *Moveset) endDash(c *Character) {
	if m.currentAnimation() == AnimCoil {
		m.animate(AnimFall)
	}
	c.Dash.Charge = -1
}

// resetDash ends the dash and clears its cooldown.
func (m *Moveset) resetDash(c *Character) {
	m.endDash(c)
	c.Dash.Start = never
}

func (m *Moveset) startSlide(c *Character) bool {
	if c.HorizontalSpeed() < m.Config.SlideThreshold {
		return false
	}
	m.setState(c, StateSlide)
	m.sound(SoundSlideStart, 1)
	return true
}

func (m *Moveset) endSlide(c *Character) {
	if c.Body.Contacts.Floor {
		m.setState(c, StateGrounded)
	} else {
		m.setState(c, StateAirborne)
	}
	m.resetDash(c)
}

func (m *Moveset) stepSlide(c *Character, dt float32) {
	c.Dash.Charge = 0
	c.Body.AddForce(m.Config.GravityVec(), dt)
	m.accelerateToInput(c, dt)
	if h := game.Horizontal(c.Body.Velocity()); h.Len() > 0 {
		c.Body.SetRotation(game.LookRotation(h))
	}
	m.animate(AnimSlide)

	if m.startDropdown(c) {
		return
	}
	if !m.Input.Held(input.ActionSlide) || !c.Body.Contacts.Floor {
		m.endSlide(c)
	}
}
