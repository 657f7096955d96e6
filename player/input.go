package player

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/event"
	"github.com/oomph-ac/parkour/player/input"
	"github.com/sirupsen/logrus"
)

// MaxPitch is the furthest the camera may look up or down, in degrees.
const MaxPitch = 89

// PressKey presses a physical key. The actions bound to it are dispatched on the next tick.
func (p *Player) PressKey(k input.Key) {
	p.dispatcher.PressKey(k)
	p.frame.Pressed = append(p.frame.Pressed, k)
}

// ReleaseKey releases a physical key.
func (p *Player) ReleaseKey(k input.Key) {
	p.dispatcher.ReleaseKey(k)
	p.frame.Released = append(p.frame.Released, k)
}

// SetMoveVector sets the local movement axes, with x pointing right and z pointing forward.
func (p *Player) SetMoveVector(x, z float32) {
	p.dispatcher.SetMoveVector(x, z)
	p.frame.MoveX, p.frame.MoveZ = x, z
}

// Look adds mouse movement to the camera. The deltas are scaled by the sensitivity of the player and
// applied on the next tick.
func (p *Player) Look(dx, dy float32) {
	p.look = p.look.Add(mgl32.Vec2{dx, dy}.Mul(p.settings.Sensitivity))
}

// SetCamera points the camera at the yaw and pitch passed, in degrees.
func (p *Player) SetCamera(yaw, pitch float32) {
	p.look = mgl32.Vec2{}
	p.character.Camera.Yaw = wrapYaw(yaw)
	p.character.Camera.Pitch = max(-MaxPitch, min(MaxPitch, pitch))
}

// Apply feeds a recorded input frame to the player. The tick is not run.
func (p *Player) Apply(ev event.InputEvent) {
	for _, k := range ev.Pressed {
		p.PressKey(k)
	}
	for _, k := range ev.Released {
		p.ReleaseKey(k)
	}
	p.SetMoveVector(ev.MoveX, ev.MoveZ)
	p.SetCamera(ev.Yaw, ev.Pitch)
}

// LastInput returns the input of the last tick, stamped with that tick.
func (p *Player) LastInput() event.InputEvent {
	return p.lastFrame
}

// PreferencesChanged returns true if the movement toggles of the settings changed before the last
// tick.
func (p *Player) PreferencesChanged() bool {
	return p.prefsChanged
}

// ActionPressed implements input.Handler.
func (p *Player) ActionPressed(a input.Action) bool {
	ok := p.moveset.ActionPressed(p.character, a)
	if p.Dbg.LogInput {
		p.log.WithFields(logrus.Fields{"player": p.name, "action": a, "accepted": ok, "state": p.character.State}).Debug("action pressed")
	}
	return ok
}

// ActionDropped implements input.Handler.
func (p *Player) ActionDropped(a input.Action) {
	p.moveset.ActionDropped(p.character, a)
	if p.Dbg.LogInput {
		p.log.WithFields(logrus.Fields{"player": p.name, "action": a}).Debug("action dropped")
	}
}

func (p *Player) applyLook() {
	if p.look == (mgl32.Vec2{}) {
		return
	}
	cam := p.character.Camera
	p.SetCamera(cam.Yaw+p.look.X(), cam.Pitch+p.look.Y())
}

// finishFrame stamps the input of the tick that just ran and starts a new frame. The move vector is
// kept, as it stays in effect until changed.
func (p *Player) finishFrame(dt float32) {
	f := p.frame
	f.EvTick = p.clock.Tick()
	f.DT = dt
	f.Yaw, f.Pitch = p.character.Camera.Yaw, p.character.Camera.Pitch
	p.lastFrame = f

	p.frame = event.InputEvent{MoveX: f.MoveX, MoveZ: f.MoveZ}
}

func wrapYaw(yaw float32) float32 {
	yaw = math32.Mod(yaw, 360)
	if yaw < 0 {
		yaw += 360
	}
	return yaw
}
