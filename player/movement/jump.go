package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/input"
)

// JumpType is the kind of jump resolved when the jump action is performed.
type JumpType uint8

const (
	JumpDefault JumpType = iota
	JumpLong
	JumpWallrun
)

func (t JumpType) String() string {
	switch t {
	case JumpLong:
		return "Long"
	case JumpWallrun:
		return "Wallrun"
	}
	return "Default"
}

// JumpState is the sustain timer of the last jump.
type JumpState struct {
	// Timer counts down while the jump key is held, reducing gravity.
	Timer float32
	// Side is the foot of the last regular jump animation, "L" or "R".
	Side string
	// Last is the type of the last performed jump.
	Last JumpType
}

// startJump performs a jump if one is possible from the current state.
func (m *Moveset) startJump(c *Character) bool {
	cfg := m.Config
	state := c.State
	if state == StateGrounded && m.startLedgeGrab(c) {
		return true
	}

	kind := JumpDefault
	if state == StateWallrun {
		kind = JumpWallrun
	}
	if m.Gear.Ammo(AbilityJump) <= 0 && kind != JumpWallrun {
		return false
	}

	f := c.Body.Frame()
	vel := c.Body.Velocity()
	switch state {
	case StateAirborne, StateDropdown:
		length := game.Clamp(-vel.Y()/10, 0.9, 2.25)
		floor := m.World.RayCast(f.Position, game.Down, length)
		switch {
		case !floor.Hit && c.AirborneTime >= cfg.JumpCoyoteTime && !c.Dash.Active():
			return false
		case state != StateDropdown && floor.Hit:
			m.Land(c)
		case c.Dash.Active() && m.since(c.LastLanded) <= cfg.LongJumpGraceAirborne:
			kind = JumpLong
		case floor.Hit:
			m.Land(c)
		}
	case StateGrounded, StateSlide:
		eligible := m.since(c.LastLanded) <= cfg.LongJumpGraceGrounded && (c.Dash.Active() || state == StateSlide)
		if eligible && !m.World.RayCast(f.Position, f.Forward(), 2).Hit {
			for _, d := range game.Range(0, 2, 0.05) {
				if !m.World.RayCast(f.Position.Add(f.Forward().Mul(d)), game.Down, 1.5).Hit {
					kind = JumpLong
					break
				}
			}
		}
	}

	if state == StateDropdown {
		m.resetCollider(c)
		c.Dropdown.Active = false
	}
	m.Input.KeyReleased(input.ActionLedgeGrab, true)
	m.Input.KeyReleased(input.ActionWallAction, true)
	m.Input.KeyReleased(input.ActionWallrun, true)

	c.resetFallSpeed()
	c.AirborneTime = 0
	vel = c.Body.Velocity()
	switch kind {
	case JumpDefault:
		height := game.Clamp(c.Momentum/cfg.JumpRequiredSpeed, 0.5, 1)
		vel = game.WithY(vel, cfg.JumpForce*height)
		if c.Jump.Side == "L" {
			c.Jump.Side = "R"
		} else {
			c.Jump.Side = "L"
		}
		if state == StateLadderClimb {
			m.resetLadder(c)
			rot := game.YawRotation(c.Camera.Yaw)
			c.Body.SetRotation(rot)
			vel = vel.Add(rot.Rotate(game.Forward).Mul(8))
			m.sound(SoundLadderGrab, 1)
		}
		m.animate(AnimJump + c.Jump.Side)
	case JumpLong:
		c.Momentum += cfg.LongJumpForce
		mult := cfg.LongJumpHeightMultiplier
		if state == StateDropdown {
			mult = cfg.LongJumpHeightMultiplierDropdown
		}
		dir := game.SafeNormalize(game.WithY(game.SafeNormalize(vel), mult))
		vel = dir.Mul(c.Momentum)
		c.VelocityLocked = true
		m.animate(AnimLongJump)
	case JumpWallrun:
		magnitude := min(c.Momentum+cfg.WallrunJumpForceHorizontal, cfg.WallrunMaxSpeed)
		camera := game.YawRotation(c.Camera.Yaw)
		look := game.SafeNormalize(camera.Rotate(game.Forward).Add(camera.Rotate(m.Input.MoveVector())))
		y := cfg.WallrunJumpForceVertical
		if cfg.WallrunJumpKeep {
			if vel.Y() > 0 {
				y += vel.Y()
			} else {
				y += vel.Y() / 4
			}
		}
		vel = game.WithY(game.SafeNormalize(game.Horizontal(look)).Mul(magnitude), y)
		if c.Wallrun.Side == SideLeft {
			m.animate(AnimJumpRWallrun)
		} else {
			m.animate(AnimJumpLWallrun)
		}
		if c.Body.Contacts.Floor {
			m.Gear.ResetAmmo(AbilityJump)
		}
	}
	c.Body.SetVelocity(vel)
	m.syncMomentum(c, 1)

	m.setState(c, StateAirborne)
	c.Jump.Timer = cfg.JumpHoldTime
	c.Jump.Last = kind
	m.Gear.DecrementAmmo(AbilityJump)
	m.sound(SoundFootstep, 1)
	m.debugf("tick %d: %v jump, velocity %v", c.ticks, kind, vel)
	return true
}

// stepJump sustains the jump while the key is held.
func (m *Moveset) stepJump(c *Character, dt float32) {
	if c.Jump.Timer <= 0 {
		return
	}
	if m.Input.Active(input.ActionJump) {
		c.Jump.Timer -= dt
		c.resetFallSpeed()
	} else {
		c.Jump.Timer = 0
	}
}

// jumpGravity returns gravity scaled down by the remaining jump sustain.
func (m *Moveset) jumpGravity(c *Character) mgl32.Vec3 {
	g := m.Config.GravityVec()
	if c.Jump.Timer > 0 {
		return g.Mul(1 - c.Jump.Timer/m.Config.JumpGravityDivisor)
	}
	return g
}
