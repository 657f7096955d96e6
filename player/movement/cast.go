package movement

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CastResult is the outcome of a world query. Point, Normal and Distance are only meaningful when Hit
// is true.
type CastResult struct {
	Hit      bool
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
	// Collider identifies the solid that was hit.
	Collider int32
}

// Shape is the cube swept by a shape cast.
type Shape struct {
	Size float32
}

// HalfExtents returns the half size of the shape on every axis.
func (s Shape) HalfExtents() mgl32.Vec3 {
	h := s.Size / 2
	return mgl32.Vec3{h, h, h}
}
