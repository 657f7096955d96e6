package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/input"
)

// Side is the side of the body a wall is on.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "Right"
	}
	return "Left"
}

// WallrunState is the sub-state of a wallrun.
type WallrunState struct {
	Timer     float32
	FailTimer float32
	// Normal is the normal of the wall being run on.
	Normal mgl32.Vec3
	Side   Side
	// Yaw is the offset from facing the wall to facing along it, in degrees.
	Yaw float32
	// ForceTarget is the forward speed the wallrun accelerates towards.
	ForceTarget float32
}

func (m *Moveset) startWallrun(c *Character) bool {
	cfg := m.Config
	if m.Gear.Ammo(AbilityWallrun) <= 0 {
		return false
	}
	left, right := c.Body.Contacts.WallrunLeft, c.Body.Contacts.WallrunRight
	vel := c.Body.Velocity()
	if (!left && !right) || vel.Y() <= cfg.WallrunThreshold {
		return false
	}

	f := c.Body.Frame()
	leftCast := m.World.RayCast(f.Position, f.Left(), 2.5)
	rightCast := m.World.RayCast(f.Position, f.Right(), 2.5)
	var leftDot, rightDot float32
	if leftCast.Hit {
		leftDot = leftCast.Normal.Mul(-1).Dot(f.Left())
	}
	if rightCast.Hit {
		rightDot = rightCast.Normal.Mul(-1).Dot(f.Right())
	}
	if (leftDot != 0 && leftDot < 0.75) || (rightDot != 0 && rightDot < 0.75) {
		return false
	}

	var (
		side   Side
		normal mgl32.Vec3
	)
	switch {
	case left && right:
		if !leftCast.Hit || !rightCast.Hit {
			return false
		}
		side, normal = SideLeft, leftCast.Normal
		if rightDot > leftDot {
			side, normal = SideRight, rightCast.Normal
		}
	case left && leftCast.Hit:
		side, normal = SideLeft, leftCast.Normal
	case right && rightCast.Hit:
		side, normal = SideRight, rightCast.Normal
	default:
		return false
	}

	yaw := float32(90)
	if side == SideRight {
		yaw = -90
	}
	c.Wallrun = WallrunState{
		Timer:       cfg.WallrunLength,
		Normal:      normal,
		Side:        side,
		Yaw:         yaw,
		ForceTarget: max(c.HorizontalSpeed(), min(c.Momentum, cfg.WallrunMomentumMaxSpeed), cfg.WallrunMinSpeed),
	}

	local := c.Body.Rotation().Inverse().Rotate(vel)
	m.alignWallrun(c, 1/cfg.ReferenceFPS)
	c.Body.SetVelocity(c.Body.Rotation().Rotate(mgl32.Vec3{0, vel.Y() * 0.75, local.Z()}))

	m.setState(c, StateWallrun)
	m.Gear.DecrementAmmo(AbilityWallrun)
	m.Input.KeyReleased(input.ActionJump, true)
	if !m.Prefs.HoldWallrun {
		m.Input.KeyReleased(input.ActionWallrun, true)
	}
	return true
}

func (m *Moveset) stepWallrun(c *Character, dt float32) {
	cfg := m.Config
	w := &c.Wallrun
	touching := c.Body.Contacts.WallrunLeft
	if w.Side == SideRight {
		touching = c.Body.Contacts.WallrunRight
	}
	floor := c.Body.Contacts.Floor
	vel := c.Body.Velocity()

	if !touching || floor || vel.Y() <= cfg.WallrunThreshold {
		w.FailTimer += dt
	}
	if w.FailTimer >= cfg.WallrunCoyoteTime || w.Timer <= 0 {
		m.setState(c, StateAirborne)
		if floor {
			m.Land(c)
		}
		m.startLedgeGrab(c)
		return
	}
	w.Timer -= dt

	if cast := m.World.RayCast(c.Body.Position(), w.Normal.Mul(-1), 1); cast.Hit {
		w.Normal = cast.Normal
	}
	m.alignWallrun(c, dt)

	move := m.Input.MoveVector()
	if move.Len() <= 0 {
		move = game.Forward
	}
	rot := c.Body.Rotation()
	local := rot.Inverse().Rotate(vel)
	speed := local.Z()
	accel := dt * cfg.WallrunAcceleration
	if move.Z() > 0 {
		if speed < w.ForceTarget {
			speed = min(speed+accel*move.Z(), w.ForceTarget)
		}
	} else if move.Z() < 0 {
		speed = max(speed+accel*move.Z(), -w.ForceTarget)
	}
	if move.X() != 0 {
		speed -= accel * math32.Abs(move.X()) * game.Sign(speed) * game.Clamp01(math32.Abs(speed))
	}

	vy := local.Y()
	if vy > 0 {
		vy -= vy * 0.025
	}
	vel = rot.Rotate(game.Forward).Mul(speed).Add(game.Up.Mul(vy))
	affect := 1 - w.Timer/cfg.WallrunLength
	vel = vel.Add(cfg.GravityVec().Mul(affect * cfg.WallrunGravity * dt))
	c.Body.SetVelocity(vel)
	m.animationSpeed(vel.Len() / 12.5)

	if m.Prefs.HoldWallrun && !m.Input.Active(input.ActionWallrun) {
		m.startJump(c)
	}
}

// alignWallrun turns the body to run along the wall.
func (m *Moveset) alignWallrun(c *Character, dt float32) {
	w := c.Wallrun
	target := game.LookRotation(w.Normal.Mul(-1)).Mul(game.YawRotation(w.Yaw))
	current := c.Body.Rotation()
	if current.Dot(target) < 0 {
		target = target.Scale(-1)
	}
	c.Body.SetRotation(mgl32.QuatSlerp(current, target, game.Clamp01(dt*5)))
}
