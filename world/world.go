package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/movement"
	"github.com/sasha-s/go-deadlock"
)

// World is a static collision world made of axis aligned solids and ladder volumes. It is safe to
// query from multiple goroutines while geometry is being added.
type World struct {
	solids  []cube.BBox
	ladders []movement.Ladder

	deadlock.RWMutex
}

// New returns an empty world.
func New() *World {
	return &World{}
}

// AddSolid adds a solid box to the world and returns the collider ID casts report for it.
func (w *World) AddSolid(bb cube.BBox) int32 {
	w.Lock()
	defer w.Unlock()

	w.solids = append(w.solids, bb)
	return int32(len(w.solids) - 1)
}

// AddLadder adds a climbable ladder volume to the world. Ladders are not solid.
func (w *World) AddLadder(l movement.Ladder) {
	w.Lock()
	w.ladders = append(w.ladders, l)
	w.Unlock()
}

// Solid returns the solid with the collider ID passed.
func (w *World) Solid(id int32) (cube.BBox, bool) {
	w.RLock()
	defer w.RUnlock()

	if id < 0 || int(id) >= len(w.solids) {
		return cube.BBox{}, false
	}
	return w.solids[id], true
}

// Len returns the amount of solids in the world.
func (w *World) Len() int {
	w.RLock()
	defer w.RUnlock()
	return len(w.solids)
}

// RayCast ...
func (w *World) RayCast(origin, dir mgl32.Vec3, maxDist float32) movement.CastResult {
	w.RLock()
	defer w.RUnlock()
	return w.cast(origin, dir, maxDist, mgl32.Vec3{})
}

// ShapeCast sweeps the shape by growing every solid by the half extents of the oriented shape and
// casting a ray against the grown boxes.
func (w *World) ShapeCast(origin, dir mgl32.Vec3, maxDist float32, shape movement.Shape, orientation mgl32.Quat) movement.CastResult {
	w.RLock()
	defer w.RUnlock()
	return w.cast(origin, dir, maxDist, orientedExtents(shape.HalfExtents(), orientation))
}

// OverlapCheck ...
func (w *World) OverlapCheck(volume cube.BBox) bool {
	w.RLock()
	defer w.RUnlock()

	for _, bb := range w.solids {
		if bb.IntersectsWith(volume) {
			return true
		}
	}
	return false
}

// TouchingLadder returns the ladder closest to origin, if any ladder is within radius of it.
func (w *World) TouchingLadder(origin mgl32.Vec3, radius float32) (movement.Ladder, bool) {
	w.RLock()
	defer w.RUnlock()

	var (
		closest movement.Ladder
		found   bool
		best    = radius
	)
	for _, l := range w.ladders {
		if dist := game.AABBVectorDistance(l.Bounds(), origin); dist <= best {
			closest, best, found = l, dist, true
		}
	}
	return closest, found
}

// cast finds the closest solid, grown by grow, hit by the ray. Solids containing the origin and faces
// pointing away from the ray are ignored. The read lock must be held.
func (w *World) cast(origin, dir mgl32.Vec3, maxDist float32, grow mgl32.Vec3) movement.CastResult {
	dir = game.SafeNormalize(dir)
	if maxDist <= 0 || dir.LenSqr() == 0 {
		return movement.CastResult{}
	}
	end := origin.Add(dir.Mul(maxDist))

	result := movement.CastResult{Distance: math32.MaxFloat32}
	for i, bb := range w.solids {
		bb = bb.GrowVec3(grow)
		if bb.Vec3Within(origin) {
			continue
		}
		hit, ok := trace.BBoxIntercept(bb, origin, end)
		if !ok {
			continue
		}
		normal := game.FaceNormal(hit.Face())
		if normal.Dot(dir) >= 0 {
			continue
		}
		if dist := hit.Position().Sub(origin).Len(); dist < result.Distance {
			result = movement.CastResult{Hit: true, Point: hit.Position(), Normal: normal, Distance: dist, Collider: int32(i)}
		}
	}
	if !result.Hit {
		return movement.CastResult{}
	}
	return result
}

// orientedExtents returns the half extents of the axis aligned box enclosing a box with half extents
// half rotated by rot.
func orientedExtents(half mgl32.Vec3, rot mgl32.Quat) mgl32.Vec3 {
	m := rot.Normalize().Mat4().Mat3()
	var out mgl32.Vec3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row] += math32.Abs(m.At(row, col)) * half[col]
		}
	}
	return out
}
