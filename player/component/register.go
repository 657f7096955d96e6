package component

import "github.com/oomph-ac/parkour/player"

// Register registers the components for the given player.
func Register(p *player.Player) {
	p.SetGear(NewGearComponent(p.Config().Ammo))
	p.SetAnimator(NewAnimationComponent(p.HandleAnimationEvent))
	p.SetFeedback(NewFeedbackComponent(p.Log(), p.Dbg.LogSounds))
}
