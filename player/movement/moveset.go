package movement

import (
	"github.com/oomph-ac/parkour/assert"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/input"
)

// Options are optional hooks of a Moveset.
type Options struct {
	// Debugf receives state transitions and other rare movement events when set.
	Debugf func(format string, args ...any)
	// OnRespawn is called after a character was sent back to its spawn point.
	OnRespawn func(c *Character)
}

// Moveset drives the movement of one character. The collaborators are owned by the character the
// moveset is attached to, while Config may be shared between movesets.
type Moveset struct {
	Config        *Config
	World         World
	Interactables Interactables
	Gear          Gear
	Animator      Animator
	Feedback      Feedback
	Input         Input
	Clock         game.Clock

	// Trials and Interactor are optional.
	Trials     Trials
	Interactor Interactor

	// Prefs are refreshed by the owner of the moveset before every step.
	Prefs   Preferences
	Options Options
}

// Step advances the character by dt seconds. Inputs must already have been dispatched for this tick,
// and the physics integrator is expected to move the body right after.
func (m *Moveset) Step(c *Character, dt float32) {
	c.ticks++
	if c.Body.Position().Y() < m.Config.WorldFloorY {
		if m.DamageSelf(c, m.Config.MaxHealth) {
			m.pushHUD(c)
			return
		}
	}

	if c.Dash.Active() {
		m.stepDash(c, dt)
	}
	if m.Gear.AbilityEnabled(AbilityGrappler) {
		m.stepGrapple(c, dt)
	}

	switch c.State {
	case StateGrounded:
		m.stepGrounded(c, dt)
	case StateAirborne:
		m.stepAirborne(c, dt)
	case StateWallclimb:
		m.stepWallclimb(c, dt)
		if c.State == StateWallclimb {
			m.animate(AnimWallclimb)
		}
	case StateWallrun:
		m.stepWallrun(c, dt)
		if c.State == StateWallrun {
			if c.Wallrun.Side == SideRight {
				m.animate(AnimWallrunRight)
			} else {
				m.animate(AnimWallrunLeft)
			}
		}
	case StateLedgeGrab:
		m.stepLedgeGrab(c, dt)
	case StateSlide:
		m.stepSlide(c, dt)
	case StateDropdown:
		m.stepDropdown(c, dt)
	case StateWallclutch:
		m.stepWallclutch(c, dt)
	case StateFly:
		m.stepFly(c, dt)
	case StateLadderClimb:
		m.stepLadder(c, dt)
	}

	assert.IsTrue(c.State.Valid(), game.ErrorInvalidMovingState, c.ticks, c.State)
	assert.IsTrue(c.Momentum >= 0, "momentum went negative (%v) in %v", c.Momentum, c.State)
	m.pushHUD(c)
}

// ActionPressed attempts to perform the action. It returns false if the action could not be performed
// in the current state, which lets the dispatcher fall through to the next action bound to the key.
func (m *Moveset) ActionPressed(c *Character, a input.Action) bool {
	switch a {
	case input.ActionLedgeGrab:
		if c.State.in(StateAirborne, StateGrounded) {
			return m.startLedgeGrab(c)
		}
	case input.ActionWallKick:
		if c.State.in(StateAirborne, StateDropdown) {
			return m.startWallKick(c)
		}
	case input.ActionJump:
		if c.State.in(StateGrounded, StateWallrun, StateAirborne, StateSlide, StateDropdown, StateLadderClimb) {
			return m.startJump(c)
		}
	case input.ActionWallAction:
		switch {
		case c.State == StateAirborne:
			return m.startWallAction(c)
		case c.State == StateWallclimb && !m.Prefs.HoldWallclimb:
			// Pressing again in toggle mode lets go of the wall on the next step.
			c.Wallclimb.Timer = 0
			return true
		}
	case input.ActionWallrun:
		if c.State == StateAirborne {
			return m.startWallrun(c)
		}
	case input.ActionCoil:
		return m.startDash(c)
	case input.ActionRespawn:
		if m.Trials != nil && m.Trials.Active() {
			return false
		}
		m.DamageSelf(c, m.Config.RespawnDamage)
		return true
	case input.ActionQuickRestart:
		if m.Trials != nil && m.Trials.Active() {
			m.Trials.Restart()
			return true
		}
	case input.ActionInteract:
		f := c.Body.Frame()
		if m.Interactor != nil && m.Interactor.Interact(f.Position, f.Forward()) {
			return true
		}
		if c.State.in(StateGrounded, StateAirborne) {
			return m.startLadder(c)
		}
	case input.ActionCancelTrial:
		if m.Trials != nil && m.Trials.Active() {
			m.Trials.Stop()
			return true
		}
	case input.ActionFly:
		return m.toggleFly(c)
	case input.ActionFlyBoost:
		return c.State == StateFly
	case input.ActionCoreUse:
		return m.startGrapple(c)
	}
	return false
}

// ActionDropped handles an action that stopped being active.
func (m *Moveset) ActionDropped(c *Character, a input.Action) {
	if a == input.ActionCoil && c.Dash.Active() {
		c.Dash.Start = m.now()
		m.endDash(c)
	}
}

func (m *Moveset) setState(c *Character, s State) {
	if c.State == s {
		return
	}
	m.debugf("tick %d: %v -> %v", c.ticks, c.State, s)
	c.State = s
}

func (m *Moveset) now() float64 {
	return m.Clock.Now()
}

func (m *Moveset) since(t float64) float32 {
	return game.Since(m.Clock, t)
}

func (m *Moveset) debugf(format string, args ...any) {
	if m.Options.Debugf != nil {
		m.Options.Debugf(format, args...)
	}
}
