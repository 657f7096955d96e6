package component

import (
	"github.com/oomph-ac/parkour/player/movement"
)

// clip describes the animation events of a looping view model animation.
type clip struct {
	length float32
	// markers are the normalized times events are raised at.
	markers []float32
	event   string
}

var clips = map[string]clip{
	movement.AnimRun:         {length: 0.66, markers: []float32{0.25, 0.75}, event: movement.EventFootstep},
	movement.AnimWallclimb:   {length: 0.3, markers: []float32{0.1}, event: movement.EventWallclimbStep},
	movement.AnimLadderClimb: {length: 0.5, markers: []float32{0.25, 0.75}, event: movement.EventFootstepLadder},
}

// AnimationComponent plays view model animations and raises the events of the current clip.
type AnimationComponent struct {
	current string
	speed   float32
	phase   float32

	onEvent func(event string)
}

// NewAnimationComponent returns an animation component that calls onEvent for every animation event.
func NewAnimationComponent(onEvent func(event string)) *AnimationComponent {
	return &AnimationComponent{current: movement.AnimIdle, speed: 1, onEvent: onEvent}
}

// SetCurrentAnimation switches to the animation if it is not already playing.
func (a *AnimationComponent) SetCurrentAnimation(key string) {
	if a.current == key {
		return
	}
	a.current = key
	a.phase = 0
	a.speed = 1
}

// CurrentAnimation returns the key of the animation playing.
func (a *AnimationComponent) CurrentAnimation() string {
	return a.current
}

// SetAnimationSpeed sets the playback speed of the current animation.
func (a *AnimationComponent) SetAnimationSpeed(speed float32) {
	a.speed = max(speed, 0)
}

// Speed returns the playback speed of the current animation.
func (a *AnimationComponent) Speed() float32 {
	return a.speed
}

// Tick advances the current animation by dt seconds, raising every event marker passed.
func (a *AnimationComponent) Tick(dt float32) {
	c, ok := clips[a.current]
	if !ok || c.length <= 0 {
		return
	}
	from := a.phase
	to := from + dt*a.speed/c.length
	for _, m := range c.markers {
		// Markers are checked on the unwrapped phase so a wrap around still raises them.
		for offset := float32(0); offset <= to; offset++ {
			if at := m + offset; at > from && at <= to {
				a.raise(c.event)
			}
		}
	}
	for to >= 1 {
		to--
	}
	a.phase = to
}

func (a *AnimationComponent) raise(event string) {
	if a.onEvent != nil {
		a.onEvent(event)
	}
}
