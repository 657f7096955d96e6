package movement

import (
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
)

func (m *Moveset) stepGrounded(c *Character, dt float32) {
	m.alignToCamera(c)
	if m.wantsLadder() && m.startLadder(c) {
		return
	}
	if !c.Body.Contacts.Floor {
		m.setState(c, StateAirborne)
	}
	m.accelerateToInput(c, dt)

	if c.State != StateGrounded {
		return
	}
	if c.Body.Velocity().Len() > 2 {
		m.animate(AnimRun)
	} else {
		m.animate(AnimIdle)
	}
	m.animationSpeed(c.HorizontalSpeed() / 8)
}

func (m *Moveset) stepAirborne(c *Character, dt float32) {
	c.AirborneTime += dt
	m.alignToCamera(c)
	if m.wantsLadder() && m.startLadder(c) {
		return
	}

	vel := c.Body.Velocity()
	if vel.Y() < 0 {
		c.LastFallSpeed = max(c.LastFallSpeed, -vel.Y())
	}
	c.Body.AddForce(m.jumpGravity(c), dt)
	m.stepJump(c, dt)
	m.accelerateToInput(c, dt)

	if c.Body.Contacts.Floor && c.Body.Velocity().Y() <= m.Config.LandVelocityThreshold {
		m.Land(c)
		return
	}
	if cur := m.currentAnimation(); !strings.Contains(cur, "Jump") && c.AirborneTime >= m.Config.JumpCoyoteTime && cur != AnimFall {
		m.animate(AnimFall)
	}
}

// alignToCamera turns the body to the yaw of the camera.
func (m *Moveset) alignToCamera(c *Character) {
	c.Body.SetRotation(game.YawRotation(c.Camera.Yaw))
}

// wantsLadder returns true if the player is pushing forward, which is what attaches to a touched ladder.
func (m *Moveset) wantsLadder() bool {
	return m.Interactables != nil && m.Input.MoveVector().Z() > 0
}

// accelerateToInput applies friction, builds momentum and steers horizontal velocity towards the input
// direction.
func (m *Moveset) accelerateToInput(c *Character, dt float32) {
	cfg := m.Config
	grounded := c.State == StateGrounded
	sliding := c.State == StateSlide
	frames := dt * cfg.ReferenceFPS

	local := m.Input.MoveVector()
	if sliding {
		local = game.SafeNormalize(mgl32.Vec3{local.X(), 0, 1})
	}
	rot := c.Body.Rotation()
	target := rot.Rotate(local)
	dir := game.SafeNormalize(target)

	accel := cfg.AccelerationCurve.Evaluate(c.HorizontalSpeed()/cfg.RunMaxSpeed) * cfg.RunMaxSpeed
	if grounded && c.Dash.Active() {
		accel *= cfg.DashGroundAccelerationMultiplier
	}
	if sliding {
		accel *= cfg.SlideAccelerationMultiplier
	}

	inputFriction := float32(0.1)
	if local.Len() > 0 || grounded {
		inputFriction = 1
	}
	rate := float32(0.1)
	if grounded {
		rate = 0.25
	}
	frictionRate := rate * frames * inputFriction
	c.Momentum = max(0, c.Momentum-frictionRate*momentumFriction(c.Momentum))

	vel := game.MoveTowards(c.Body.Velocity(), mgl32.Vec3{}, frictionRate)

	var alignment float32
	if dir.Len() > 0 {
		if h := game.Horizontal(vel); h.Len() > 0 {
			alignment = max(0, dir.Dot(h.Normalize()))
		} else {
			alignment = 1
		}
	}

	// Counter-steer friction on the local axes that oppose the input.
	scalar := float32(-0.15)
	if grounded {
		scalar = -0.3
	}
	scalar *= frames * inputFriction
	lv := rot.Inverse().Rotate(vel)
	lv[0] += lv.X() * axisFriction(lv.X(), local.X()) * scalar
	lv[2] += lv.Z() * axisFriction(lv.Z(), local.Z()) * scalar
	vel = rot.Rotate(lv)

	c.Momentum = max(0, c.Momentum+accel/40*frames*alignment)

	if target.Len() > 0.25 {
		redirect := float32(1)
		if c.VelocityLocked {
			redirect = 0.1
		}
		h := game.Horizontal(vel)
		hLen := h.Len()
		steered := game.SlerpDirection(game.SafeNormalize(h), game.Horizontal(target), game.Clamp01(dt*2.5*redirect))
		vel = game.WithY(steered.Mul(hLen), vel.Y())
	}
	c.Body.SetVelocity(vel)
	m.syncMomentum(c, dt)

	c.Body.AddForce(dir.Mul(accel), dt)
}

// syncMomentum pulls momentum up towards the horizontal speed when velocity was gained outside of the
// locomotion integrator.
func (m *Moveset) syncMomentum(c *Character, dt float32) {
	h := c.HorizontalSpeed()
	if h-c.Momentum > m.Config.MomentumSyncThreshold {
		c.Momentum = game.Lerp(c.Momentum, h, game.Clamp01(dt*15))
	}
}

// momentumFriction scales momentum decay, growing steeply above 10.
func momentumFriction(momentum float32) float32 {
	return 1 + math32.Pow(max((momentum-10)/30, 0), 1.75)*6
}

// axisFriction returns 1 if the velocity on an axis should be damped given the input on that axis.
func axisFriction(current, in float32) float32 {
	if in == 0 {
		return 1
	}
	if game.Sign(current) == game.Sign(in) {
		return 0
	}
	return 1
}
