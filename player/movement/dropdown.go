package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
)

// DropdownState is the sub-state of a dropdown off a ledge.
type DropdownState struct {
	Active       bool
	Tween        Tween
	LastPosition mgl32.Vec3
}

// startDropdown drops a sliding character over an edge in front of it.
func (m *Moveset) startDropdown(c *Character) bool {
	cfg := m.Config
	f := c.Body.Frame()
	fwd := f.Forward()
	if m.World.RayCast(f.Position, fwd, 1).Hit {
		return false
	}
	if m.World.RayCast(f.Position.Add(fwd.Mul(cfg.DropdownDistance)), game.Down, cfg.DropdownHeight).Hit {
		return false
	}
	m.setState(c, StateDropdown)

	m.resetDash(c)
	m.startDash(c)
	m.animate(AnimDropdown)
	vel := c.Body.Velocity()
	c.Body.SetVelocity(mgl32.Vec3{vel.X() * 0.75, vel.Y(), vel.Z() * 0.75})
	m.shrinkCollider(c)

	dist := cfg.DropdownDistance
	for _, d := range game.Range(cfg.DropdownDistance, 0, -0.05) {
		if m.World.RayCast(f.Position.Add(fwd.Mul(d)), game.Down, cfg.DropdownDistance).Hit {
			dist = d
			break
		}
	}
	last := c.Body.Position()
	target := f.Position.Add(fwd.Mul(dist)).Sub(mgl32.Vec3{0, cfg.DropdownHeight})
	c.Dropdown = DropdownState{
		Active:       true,
		Tween:        NewTween(last, target, cfg.DropdownTweenTime, game.InSine),
		LastPosition: last,
	}
	return true
}

func (m *Moveset) stepDropdown(c *Character, dt float32) {
	d := &c.Dropdown
	if !d.Active {
		m.setState(c, StateAirborne)
		return
	}
	pos, done := d.Tween.Advance(dt)
	c.Body.SetPosition(c.Body.Position().Add(pos.Sub(d.LastPosition)))
	d.LastPosition = pos
	if done {
		d.Active = false
		m.setState(c, StateAirborne)
		m.resetCollider(c)
		m.endDash(c)
	}
}
