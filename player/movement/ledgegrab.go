package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/input"
)

// GrabType classifies a ledge by its height above the origin of the scan.
type GrabType uint8

const (
	GrabVaultHigh GrabType = iota
	GrabVaultLow
	GrabLedge
)

func (t GrabType) String() string {
	switch t {
	case GrabVaultHigh:
		return "VaultHigh"
	case GrabVaultLow:
		return "VaultLow"
	}
	return "LedgeGrab"
}

// LedgeState is the sub-state of a ledge grab or vault.
type LedgeState struct {
	Type GrabType
	// End is the point on top of the ledge the character ends up at.
	End mgl32.Vec3

	// Legs are the tweens moving the body. A kinematic grab moves the body to each tween value, a vault
	// moves it by the change of the tween value while its velocity keeps working.
	Legs         []Tween
	Leg          int
	LastPosition mgl32.Vec3

	VirtualSpeed     float32
	CurrentMagnitude float32
	StoredVelocity   mgl32.Vec3
}

// Kinematic returns true if the grab moves the body without physics.
func (l LedgeState) Kinematic() bool {
	return l.Type == GrabLedge
}

// startLedgeGrab scans for a ledge above and in front of the character.
func (m *Moveset) startLedgeGrab(c *Character) bool {
	return m.probeLedge(c, 0, 0, false)
}

// probeLedge scans upwards for the lowest height a small box can pass forward, then forward from that
// height for a surface to stand on. A height of zero is computed from the state. When force is set the
// grab type is not classified.
func (m *Moveset) probeLedge(c *Character, height float32, forced GrabType, force bool) bool {
	cfg := m.Config
	vy := c.Body.Velocity().Y()
	if vy <= cfg.LedgeGrabMaxFallSpeed {
		return false
	}

	f := c.Body.RawFrame()
	origin := f.Position
	grounded := c.State == StateGrounded
	if height <= 0 {
		height = 3
		if !grounded {
			height = 2.75
			if vy > 0 {
				height += game.Clamp(vy/6, 0, 0.75)
			}
		}
	}
	if !grounded {
		length := 0.85 * game.Clamp(-vy/10, 1, 3)
		if down := m.World.RayCast(origin, game.Down, length); down.Hit {
			length = down.Distance
		}
		origin = origin.Add(game.Down.Mul(length))
		height += length
	}
	if up := m.World.RayCast(origin, game.Up, height); up.Hit {
		height = up.Distance
	} else {
		origin = origin.Add(mgl32.Vec3{0, 0.25})
	}

	fwd := f.Forward()
	shape := Shape{Size: cfg.LedgeCastSize}
	for _, h := range game.Range(0, height, cfg.LedgeScanStep) {
		pos := origin.Add(mgl32.Vec3{0, h})
		if m.World.ShapeCast(pos, fwd, cfg.LedgeCastDistance, shape, f.Rotation).Hit {
			continue
		}
		for _, d := range game.Range(0, cfg.LedgeScanDistance, cfg.LedgeScanStep) {
			down := m.World.RayCast(pos.Add(fwd.Mul(d)), game.Down, h)
			if !down.Hit || m.ledgeObstructed(down.Point, fwd) {
				continue
			}
			kind := forced
			if !force {
				kind = m.classifyLedge(down.Point.Y(), origin.Y())
			}
			m.beginLedgeGrab(c, down.Point, kind)
			return true
		}
	}
	return false
}

func (m *Moveset) classifyLedge(surface, origin float32) GrabType {
	switch {
	case surface <= origin+m.Config.VaultLowHeight:
		return GrabVaultLow
	case surface <= origin+m.Config.VaultHighHeight:
		return GrabVaultHigh
	}
	return GrabLedge
}

// ledgeObstructed returns true if there is no room to stand right above point.
func (m *Moveset) ledgeObstructed(point, fwd mgl32.Vec3) bool {
	base := point.Add(mgl32.Vec3{0, 0.05})
	return m.World.RayCast(base.Sub(fwd.Mul(0.25)), fwd, 0.5).Hit ||
		m.World.RayCast(base.Add(fwd.Mul(0.25)), fwd.Mul(-1), 0.5).Hit
}

func (m *Moveset) beginLedgeGrab(c *Character, end mgl32.Vec3, kind GrabType) {
	m.setState(c, StateLedgeGrab)
	c.resetFallSpeed()
	m.shrinkCollider(c)

	vel := c.Body.Velocity()
	virtual := max(c.Momentum, vel.Len())
	var magnitude float32
	if m.Input.MoveVector().Len() > 0 {
		magnitude = virtual
	}
	origin := c.Body.Position()
	c.Ledge = LedgeState{
		Type:             kind,
		End:              end,
		LastPosition:     origin,
		VirtualSpeed:     virtual,
		CurrentMagnitude: magnitude,
		StoredVelocity:   vel,
	}

	f := c.Body.RawFrame()
	if c.Ledge.Kinematic() {
		c.Body.Kinematic = true
		edge := end.Add(f.Back().Mul(0.515)).Add(game.Down.Mul(1.67))
		climb := game.Clamp(end.Sub(edge).Len()/6-0.2, 0.5, 1)
		c.Ledge.Legs = []Tween{
			NewTween(origin, edge, 0.07, game.InOutSine),
			NewTween(edge, end, 0.5*climb, game.InSine),
		}
		m.animate(AnimLedgeGrab)
	} else {
		c.Body.SetVelocity(f.Forward().Mul(magnitude))
		c.Ledge.Legs = []Tween{NewTween(origin, end, 0.15, game.InSine)}
		m.animate(AnimVaultStart)
	}
	m.sound(SoundGrab, 1)
	m.debugf("tick %d: %v at %v", c.ticks, kind, end)
}

func (m *Moveset) stepLedgeGrab(c *Character, dt float32) {
	l := &c.Ledge
	if l.Leg >= len(l.Legs) {
		m.finishLedgeGrab(c)
		return
	}
	pos, done := l.Legs[l.Leg].Advance(dt)
	if l.Kinematic() {
		c.Body.SetPosition(pos)
	} else {
		c.Body.SetPosition(c.Body.Position().Add(pos.Sub(l.LastPosition)))
	}
	l.LastPosition = pos
	if !done {
		return
	}
	l.Leg++
	if l.Leg < len(l.Legs) {
		l.LastPosition = l.Legs[l.Leg].From
		return
	}
	m.finishLedgeGrab(c)
}

func (m *Moveset) finishLedgeGrab(c *Character) {
	cfg := m.Config
	l := c.Ledge
	if l.Kinematic() {
		c.Body.Kinematic = false
		c.Body.SetVelocity(l.StoredVelocity)
	}
	m.resetCollider(c)
	m.setState(c, StateAirborne)
	m.Gear.ResetAmmo(AbilityJump)

	fwd := c.Body.Frame().Forward()
	stick := m.Input.MoveVector().Len() > 0
	switch l.Type {
	case GrabVaultHigh, GrabVaultLow:
		if m.Input.Active(input.ActionLedgeGrab) {
			if stick {
				c.Body.SetVelocity(game.SafeNormalize(game.WithY(fwd, cfg.LedgeGrabForwardY)).Mul(l.VirtualSpeed + cfg.LedgeGrabForwardSpeed))
			} else {
				c.Body.SetVelocity(game.WithY(fwd.Mul(l.VirtualSpeed/4), l.VirtualSpeed*0.875+cfg.LedgeGrabUpSpeed))
			}
			m.animate(AnimVaultLaunch)
		} else {
			c.Body.SetVelocity(game.SafeNormalize(game.WithY(fwd, 0.25)).Mul(l.CurrentMagnitude))
			m.animate(AnimVaultEnd)
		}
		c.Jump.Timer = 1
	case GrabLedge:
		m.syncMomentum(c, 1/cfg.ReferenceFPS)
		var speed float32
		if stick {
			speed = min(c.Momentum, cfg.LedgeGrabSpeedCap)
		}
		c.Body.SetVelocity(game.Horizontal(fwd).Mul(speed))
		m.Land(c)
	}
	c.Ledge.Legs = nil
}

// shrinkCollider swaps the body collider for the small one used to slip over edges.
func (m *Moveset) shrinkCollider(c *Character) {
	c.Body.Shrunk = true
}

func (m *Moveset) resetCollider(c *Character) {
	c.Body.Shrunk = false
}
