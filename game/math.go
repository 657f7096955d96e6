package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	Up      = mgl32.Vec3{0, 1, 0}
	Down    = mgl32.Vec3{0, -1, 0}
	Forward = mgl32.Vec3{0, 0, 1}
	Back    = mgl32.Vec3{0, 0, -1}
	Right   = mgl32.Vec3{1, 0, 0}
	Left    = mgl32.Vec3{-1, 0, 0}
)

// Clamp clamps the given value to the given range.
func Clamp(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Clamp01 clamps the given value between zero and one.
func Clamp01(num float32) float32 {
	return Clamp(num, 0, 1)
}

// Lerp linearly interpolates between a and b by t. t is not clamped.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// LerpVec3 linearly interpolates between two vectors by t. t is not clamped.
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Map re-maps a number from one range to another.
func Map(v, inMin, inMax, outMin, outMax float32) float32 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// Sign returns -1, 0 or 1 depending on the sign of v.
func Sign(v float32) float32 {
	if v > 0 {
		return 1
	} else if v < 0 {
		return -1
	}
	return 0
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec3ApproxEq determines whether every component of two vectors is within 1e-4 of each other.
func Vec3ApproxEq(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-4)
}

// WithY returns the vector with its Y component replaced.
func WithY(v mgl32.Vec3, y float32) mgl32.Vec3 {
	return mgl32.Vec3{v[0], y, v[2]}
}

// Horizontal returns the vector with its Y component zeroed.
func Horizontal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], 0, v[2]}
}

// HorizontalLen returns the length of the horizontal components of a vector.
func HorizontalLen(v mgl32.Vec3) float32 {
	return math32.Sqrt(Vec3HzDistSqr(v))
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// SafeNormalize returns the unit vector of v, or the zero vector if v has no length. mgl32's
// Normalize divides by zero in that case.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l <= 1e-6 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// MoveTowards moves current towards target by at most maxDelta.
func MoveTowards(current, target mgl32.Vec3, maxDelta float32) mgl32.Vec3 {
	delta := target.Sub(current)
	dist := delta.Len()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(delta.Mul(maxDelta / dist))
}

// SlerpDirection spherically interpolates between two directions, treating them as unit vectors
// and interpolating the magnitude linearly.
func SlerpDirection(from, to mgl32.Vec3, t float32) mgl32.Vec3 {
	t = Clamp01(t)
	fromLen, toLen := from.Len(), to.Len()
	if fromLen <= 1e-6 || toLen <= 1e-6 {
		return LerpVec3(from, to, t)
	}

	a, b := from.Mul(1/fromLen), to.Mul(1/toLen)
	dot := Clamp(a.Dot(b), -1, 1)
	theta := math32.Acos(dot) * t
	if theta <= 1e-6 {
		return LerpVec3(a, b, t).Mul(Lerp(fromLen, toLen, t))
	}

	relative := b.Sub(a.Mul(dot))
	if relative.Len() <= 1e-6 {
		// Opposite directions: rotate around the up axis.
		relative = mgl32.Vec3{-a.Z(), 0, a.X()}
		if relative.Len() <= 1e-6 {
			relative = Forward
		}
	}
	relative = relative.Normalize()
	dir := a.Mul(math32.Cos(theta)).Add(relative.Mul(math32.Sin(theta)))
	return dir.Mul(Lerp(fromLen, toLen, t))
}

// YawRotation returns a rotation of the given yaw (in degrees) around the up axis.
func YawRotation(yaw float32) mgl32.Quat {
	return mgl32.QuatRotate(mgl32.DegToRad(yaw), Up)
}

// LookRotation returns a yaw-only rotation facing the horizontal component of dir. If dir has no
// horizontal component the identity rotation is returned.
func LookRotation(dir mgl32.Vec3) mgl32.Quat {
	if Vec3HzDistSqr(dir) <= 1e-12 {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatRotate(math32.Atan2(dir.X(), dir.Z()), Up)
}

// Yaw returns the yaw (in degrees) that the given rotation faces.
func Yaw(rot mgl32.Quat) float32 {
	f := rot.Rotate(Forward)
	return mgl32.RadToDeg(math32.Atan2(f.X(), f.Z()))
}

// DirectionVector returns a direction vector from the given yaw and pitch values. A positive pitch
// looks downwards.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	yawRad, pitchRad := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	m := math32.Cos(pitchRad)

	return mgl32.Vec3{
		m * math32.Sin(yawRad),
		-math32.Sin(pitchRad),
		m * math32.Cos(yawRad),
	}
}

// WrapYawDelta ...
func WrapYawDelta(delta float32) float32 {
	if delta > 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}
	return delta
}

// Range returns the values from start to end (inclusive) in increments of step. A zero step or a
// step pointing away from end yields nothing.
func Range(start, end, step float32) []float32 {
	if step == 0 || (end-start)*step < 0 {
		return nil
	}
	n := int(math32.Floor((end-start)/step+1e-4)) + 1
	out := make([]float32, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, start+float32(i)*step)
	}
	return out
}
