package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
)

// Tween interpolates a vector over time. It only advances while the state owning it is stepped, so an
// interrupted state leaves its tween behind instead of finishing it.
type Tween struct {
	From     mgl32.Vec3
	To       mgl32.Vec3
	Duration float32
	Elapsed  float32
	Ease     game.Easing
}

// NewTween ...
func NewTween(from, to mgl32.Vec3, duration float32, ease game.Easing) Tween {
	if ease == nil {
		ease = game.Linear
	}
	return Tween{From: from, To: to, Duration: duration, Ease: ease}
}

// Advance moves the tween forward by dt and returns the interpolated value and whether the tween has
// completed.
func (t *Tween) Advance(dt float32) (mgl32.Vec3, bool) {
	t.Elapsed += dt
	return t.Value(), t.Done()
}

// Value returns the current interpolated value.
func (t *Tween) Value() mgl32.Vec3 {
	if t.Duration <= 0 {
		return t.To
	}
	ease := t.Ease
	if ease == nil {
		ease = game.Linear
	}
	return game.LerpVec3(t.From, t.To, ease(game.Clamp01(t.Elapsed/t.Duration)))
}

// Done returns true once the tween reached its end value.
func (t *Tween) Done() bool {
	return t.Elapsed >= t.Duration
}
