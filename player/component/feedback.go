package component

import (
	"github.com/oomph-ac/parkour/player/movement"
	"github.com/sirupsen/logrus"
)

// maxQueuedSounds is the amount of sounds kept until the host drains them.
const maxQueuedSounds = 64

// Sound is a sound requested by the moveset.
type Sound struct {
	Name   string
	Volume float32
}

// FeedbackComponent collects the sounds and HUD updates produced while stepping, for the host to
// present after the tick.
type FeedbackComponent struct {
	log    *logrus.Logger
	sounds []Sound
	hud    movement.HUD
	logged bool
}

// NewFeedbackComponent returns a new feedback component. Sounds are traced to the logger when logSounds
// is set.
func NewFeedbackComponent(log *logrus.Logger, logSounds bool) *FeedbackComponent {
	return &FeedbackComponent{log: log, logged: logSounds}
}

// PlaySound queues a sound. The oldest sound is dropped once the queue is full.
func (f *FeedbackComponent) PlaySound(name string, volume float32) {
	if len(f.sounds) >= maxQueuedSounds {
		f.sounds = append(f.sounds[:0], f.sounds[1:]...)
	}
	f.sounds = append(f.sounds, Sound{Name: name, Volume: volume})
	if f.logged && f.log != nil {
		f.log.WithField("volume", volume).Debugf("sound %s", name)
	}
}

// UpdateHUD stores the latest HUD snapshot.
func (f *FeedbackComponent) UpdateHUD(h movement.HUD) {
	f.hud = h
}

// HUD returns the latest HUD snapshot.
func (f *FeedbackComponent) HUD() movement.HUD {
	return f.hud
}

// DrainSounds returns the queued sounds and clears the queue.
func (f *FeedbackComponent) DrainSounds() []Sound {
	out := f.sounds
	f.sounds = nil
	return out
}
