package movement

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/input"
)

// toggleFly switches between the developer fly state and regular air movement.
func (m *Moveset) toggleFly(c *Character) bool {
	if !m.Config.AllowFly {
		return false
	}
	if c.State == StateFly {
		m.setState(c, StateAirborne)
		return true
	}
	m.resetGrapple(c)
	m.resetLadder(c)
	m.setState(c, StateFly)
	return true
}

func (m *Moveset) stepFly(c *Character, dt float32) {
	cfg := m.Config
	m.alignToCamera(c)
	c.AirborneTime = 0
	c.resetFallSpeed()

	move := m.Input.MoveVector()
	look := game.DirectionVector(c.Camera.Yaw, c.Camera.Pitch)
	right := game.YawRotation(c.Camera.Yaw).Rotate(game.Right)
	speed := cfg.FlySpeed
	if m.Input.Active(input.ActionFlyBoost) {
		speed *= cfg.FlyBoostMultiplier
	}
	target := game.SafeNormalize(look.Mul(move.Z()).Add(right.Mul(move.X()))).Mul(speed)
	c.Body.SetVelocity(game.MoveTowards(c.Body.Velocity(), target, speed*dt*10))
	c.Momentum = math32.Min(c.HorizontalSpeed(), m.Config.MomentumCap)
	m.animate(AnimIdle)
}
