package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/movement"
)

const (
	// probeSkin is how far the contact probes reach past the collider.
	probeSkin float32 = 0.05
	// wallProbeReach is how far in front of and beside the collider walls are detected.
	wallProbeReach float32 = 0.3
)

// Integrate moves the body by its velocity over dt seconds, clipping the movement against the solids
// of the world one axis at a time, and refreshes the contacts of the body. Kinematic bodies are not
// moved but still have their contacts refreshed.
func (w *World) Integrate(b *movement.Body, dt float32) {
	w.RLock()
	defer w.RUnlock()

	if !b.Kinematic {
		w.move(b, dt)
	}
	b.Contacts = w.contacts(b)
}

func (w *World) move(b *movement.Body, dt float32) {
	vel := b.Velocity()
	delta := vel.Mul(dt)
	if delta.LenSqr() == 0 {
		return
	}

	collider := b.Collider()
	nearby := w.nearby(collider.Extend(delta))

	moved := mgl32.Vec3{}
	for _, axis := range [3]int{1, 0, 2} {
		var axisDelta mgl32.Vec3
		axisDelta[axis] = delta[axis]
		for i := len(nearby) - 1; i >= 0; i-- {
			axisDelta = clipCollide(nearby[i], collider, axisDelta).delta
		}
		collider = collider.Translate(axisDelta)
		moved = moved.Add(axisDelta)
	}

	b.SetPosition(b.Position().Add(moved))
	if moved != delta {
		for i := 0; i < 3; i++ {
			if !game.Float32ApproxEq(moved[i], delta[i]) {
				vel[i] = 0
			}
		}
		b.SetVelocity(vel)
	}
}

func (w *World) contacts(b *movement.Body) movement.Contacts {
	pos := b.Position()
	f := b.RawFrame()
	inset := movement.BodyHalfWidth - probeSkin

	feet := cube.Box(-inset, -probeSkin, -inset, inset, probeSkin, inset).Translate(pos)

	reach := movement.BodyHalfWidth + wallProbeReach/2
	wall := game.AABBFromDimensions(wallProbeReach, 0, movement.BodyHeight-movement.CenterOfMassHeight).
		Translate(pos.Add(mgl32.Vec3{0, movement.CenterOfMassHeight}))

	return movement.Contacts{
		Floor:        w.overlaps(feet),
		Wallclimb:    w.overlaps(wall.Translate(f.Forward().Mul(reach))),
		WallrunLeft:  w.overlaps(wall.Translate(f.Left().Mul(reach))),
		WallrunRight: w.overlaps(wall.Translate(f.Right().Mul(reach))),
	}
}

func (w *World) overlaps(volume cube.BBox) bool {
	for _, bb := range w.solids {
		if bb.IntersectsWith(volume) {
			return true
		}
	}
	return false
}

// nearby returns the solids intersecting the volume. The read lock must be held.
func (w *World) nearby(volume cube.BBox) []cube.BBox {
	var list []cube.BBox
	for _, bb := range w.solids {
		if bb.IntersectsWith(volume) {
			list = append(list, bb)
		}
	}
	return list
}
