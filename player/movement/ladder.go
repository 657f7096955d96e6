package movement

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
)

// Ladder is a climbable volume. Climbing happens along the local Y axis of the ladder.
type Ladder struct {
	Center   mgl32.Vec3
	Rotation mgl32.Quat
	Size     mgl32.Vec3
}

// PointToObjectSpace converts a world position into the local space of the ladder.
func (l Ladder) PointToObjectSpace(p mgl32.Vec3) mgl32.Vec3 {
	return l.Rotation.Inverse().Rotate(p.Sub(l.Center))
}

// PointToWorldSpace converts a position local to the ladder into world space.
func (l Ladder) PointToWorldSpace(p mgl32.Vec3) mgl32.Vec3 {
	return l.Center.Add(l.Rotation.Rotate(p))
}

// Forward returns the direction the ladder faces.
func (l Ladder) Forward() mgl32.Vec3 {
	return l.Rotation.Rotate(game.Forward)
}

// Bounds returns the axis aligned box enclosing the ladder.
func (l Ladder) Bounds() cube.BBox {
	half := l.Size.Mul(0.5)
	var minV, maxV mgl32.Vec3
	for i := 0; i < 8; i++ {
		corner := mgl32.Vec3{half.X(), half.Y(), half.Z()}
		if i&1 != 0 {
			corner[0] = -corner[0]
		}
		if i&2 != 0 {
			corner[1] = -corner[1]
		}
		if i&4 != 0 {
			corner[2] = -corner[2]
		}
		w := l.Rotation.Rotate(corner)
		if i == 0 {
			minV, maxV = w, w
			continue
		}
		for a := 0; a < 3; a++ {
			minV[a] = min(minV[a], w[a])
			maxV[a] = max(maxV[a], w[a])
		}
	}
	return cube.Box(minV[0], minV[1], minV[2], maxV[0], maxV[1], maxV[2]).Translate(l.Center)
}

// LadderState is the sub-state of a ladder climb.
type LadderState struct {
	Attached bool
	Current  Ladder
	// Offset is the local position of the body on the ladder, snapped towards the ladder center.
	Offset mgl32.Vec3
	Snap   Tween
	// Last is when the character last attached to or left a ladder.
	Last float64
}

func (m *Moveset) startLadder(c *Character) bool {
	cfg := m.Config
	if m.Interactables == nil || m.since(c.Ladder.Last) <= cfg.LadderCooldown {
		return false
	}
	ladder, ok := m.Interactables.TouchingLadder(c.Body.Frame().Position, cfg.LadderRadius)
	if !ok {
		return false
	}
	half := ladder.Size.Y() / 2
	local := ladder.PointToObjectSpace(c.Body.Position())
	local[1] = game.Clamp(local.Y(), -half, half)

	m.setState(c, StateLadderClimb)
	c.Ladder = LadderState{
		Attached: true,
		Current:  ladder,
		Offset:   local,
		Snap:     NewTween(local, mgl32.Vec3{}, cfg.LadderSnapTime, game.OutSine),
		Last:     m.now(),
	}
	c.Body.SetPosition(ladder.PointToWorldSpace(local))
	c.Body.SetRotation(ladder.Rotation)
	c.Body.SetVelocity(mgl32.Vec3{})
	m.Gear.ResetAmmo()
	m.shrinkCollider(c)
	m.sound(SoundLadderGrab, 1)
	return true
}

func (m *Moveset) stepLadder(c *Character, dt float32) {
	cfg := m.Config
	l := &c.Ladder
	if !l.Attached {
		m.setState(c, StateAirborne)
		return
	}
	l.Offset, _ = l.Snap.Advance(dt)
	climb := m.Input.MoveVector().Z()
	c.Body.SetVelocity(game.MoveTowards(c.Body.Velocity(), mgl32.Vec3{0, climb * cfg.LadderClimbSpeed}, dt*cfg.LadderAcceleration))

	half := l.Current.Size.Y() / 2
	height := l.Current.PointToObjectSpace(c.Body.Position()).Y()
	c.Body.SetPosition(l.Current.PointToWorldSpace(game.WithY(l.Offset, game.Clamp(height, -half, half))))
	m.animate(AnimLadderClimb)
	m.animationSpeed(c.Body.Velocity().Len())

	floor := c.Body.Contacts.Floor
	switch {
	case (height < -half+0.25 && climb < 0) || (floor && m.since(l.Last) >= cfg.LadderGroundedExitTime):
		m.resetLadder(c)
		if floor {
			m.Land(c)
		} else {
			m.setState(c, StateAirborne)
		}
	case height > half:
		top := l.Current.PointToWorldSpace(game.WithY(l.Offset, half).Add(mgl32.Vec3{0, 0.1, 0.25}))
		l.Attached = false
		l.Last = m.now()
		m.beginLedgeGrab(c, top, GrabLedge)
	}
}

// resetLadder detaches the character from its ladder, keeping only its yaw.
func (m *Moveset) resetLadder(c *Character) {
	if !c.Ladder.Attached {
		return
	}
	c.Body.SetRotation(game.YawRotation(game.Yaw(c.Body.Rotation())))
	c.Ladder.Attached = false
	c.Ladder.Last = m.now()
	m.resetCollider(c)
}
