package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// AABBFromDimensions returns a bounding box centered horizontally on the origin, spanning from
// -below to above on the Y axis.
func AABBFromDimensions(width, below, above float32) cube.BBox {
	h := width / 2
	return cube.Box(
		-h, -below, -h,
		h, above, h,
	)
}

// AABBCenter returns the center point of a bounding box.
func AABBCenter(bb cube.BBox) mgl32.Vec3 {
	return bb.Min().Add(bb.Max()).Mul(0.5)
}

// AABBVectorDistance calculates the distance between an AABB and a vector.
func AABBVectorDistance(a cube.BBox, v mgl32.Vec3) float32 {
	x := math32.Max(a.Min().X()-v.X(), math32.Max(0, v.X()-a.Max().X()))
	y := math32.Max(a.Min().Y()-v.Y(), math32.Max(0, v.Y()-a.Max().Y()))
	z := math32.Max(a.Min().Z()-v.Z(), math32.Max(0, v.Z()-a.Max().Z()))

	dist := math32.Sqrt(x*x + y*y + z*z)
	if math32.IsNaN(dist) {
		dist = 0
	}

	return dist
}

// ClosestPointToBBox returns the point on (or inside) the bounding box closest to v.
func ClosestPointToBBox(v mgl32.Vec3, bb cube.BBox) mgl32.Vec3 {
	return mgl32.Vec3{
		Clamp(v.X(), bb.Min().X(), bb.Max().X()),
		Clamp(v.Y(), bb.Min().Y(), bb.Max().Y()),
		Clamp(v.Z(), bb.Min().Z(), bb.Max().Z()),
	}
}

// FaceNormal returns the outward unit normal of a bounding box face.
func FaceNormal(f cube.Face) mgl32.Vec3 {
	switch f {
	case cube.FaceDown:
		return Down
	case cube.FaceUp:
		return Up
	case cube.FaceNorth:
		return Back
	case cube.FaceSouth:
		return Forward
	case cube.FaceWest:
		return Left
	case cube.FaceEast:
		return Right
	}
	return mgl32.Vec3{}
}

// BBHasZeroVolume returns true if the bounding box has no volume.
func BBHasZeroVolume(bb cube.BBox) bool {
	return bb.Min() == bb.Max()
}
