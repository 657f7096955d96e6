package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
)

// clip is the outcome of clipping a moving box against a stationary one.
type clip struct {
	// delta is the displacement left after the moving box was stopped at the stationary box.
	delta mgl32.Vec3
	// penetration is the smallest overlap on any axis when the boxes already intersected.
	penetration float32
}

// clipCollide clips the displacement of the moving box against the stationary box. When the boxes
// already overlap, the displacement on the axis of least penetration is pushed out of the stationary
// box instead.
func clipCollide(stationary, moving cube.BBox, delta mgl32.Vec3) clip {
	res := clip{delta: delta}
	if game.BBHasZeroVolume(stationary) {
		return res
	}

	var (
		depth   [3]float32
		signed  [3]float32
		normal  [3]float32
		apart   int
		apartOn int
	)
	res.penetration = math32.MaxFloat32
	for i := 0; i < 3; i++ {
		below := moving.Max()[i] - stationary.Min()[i]
		above := stationary.Max()[i] - moving.Min()[i]
		if math32.Abs(below) <= 1e-7 {
			below = 0
		}
		if math32.Abs(above) <= 1e-7 {
			above = 0
		}

		switch {
		case below <= 0:
			signed[i], normal[i] = below, -1
			apart++
			apartOn = i
		case above <= 0:
			signed[i], normal[i] = above, 1
			apart++
			apartOn = i
		case below < above:
			depth[i], signed[i], normal[i] = below, below, -1
		default:
			depth[i], signed[i], normal[i] = above, above, 1
		}
		if apart > 1 {
			res.penetration = 0
			return res
		}
		res.penetration = min(res.penetration, depth[i])
	}

	if apart == 0 {
		axis := 0
		for i := 1; i < 3; i++ {
			if depth[i] < depth[axis] {
				axis = i
			}
		}
		push := depth[axis] * normal[axis]
		if push > 0 {
			res.delta[axis] = max(push, delta[axis])
		} else {
			res.delta[axis] = min(push, delta[axis])
		}
		return res
	}

	res.penetration = 0
	if signed[apartOn]-normal[apartOn]*delta[apartOn] <= 0 {
		return res
	}
	res.delta[apartOn] = signed[apartOn] * normal[apartOn]
	return res
}
