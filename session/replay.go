package session

import (
	"github.com/oomph-ac/parkour/event"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/oerror"
	"github.com/oomph-ac/parkour/player"
	"github.com/oomph-ac/parkour/player/component"
	"github.com/sirupsen/logrus"
)

// Result is the outcome of a replay.
type Result struct {
	// Ticks is the amount of ticks simulated.
	Ticks uint64
	// Verified is the amount of ticks whose digest matched the recording.
	Verified uint64
}

// Replay simulates the recording again in the world passed, checking the state digest of every tick
// against the recorded one. The world must hold the same geometry the recording was made in. The
// replayed player is returned along with the result, also when the replay diverged.
func Replay(log *logrus.Logger, rec *Recording, w player.World) (*player.Player, Result, error) {
	cfg := rec.Header.Settings.Movement
	p := player.New(log, rec.Header.Name, w, rec.Header.SpawnPosition(), &cfg, rec.Header.Settings.Settings)
	component.Register(p)

	var res Result
	for _, ev := range rec.Events {
		switch ev := ev.(type) {
		case event.PreferencesEvent:
			s := p.Settings()
			s.HoldWallclimb, s.HoldWallrun = ev.HoldWallclimb, ev.HoldWallrun
			p.SetSettings(s)
		case event.InputEvent:
			if want := p.CurrentTick() + 1; ev.Tick() != want {
				return p, res, oerror.New("input for tick %d found while expecting tick %d", ev.Tick(), want)
			}
			p.Apply(ev)
			p.Tick(ev.DT)
			res.Ticks++
		case event.TickEvent:
			if ev.Tick() != p.CurrentTick() {
				return p, res, oerror.New("digest for tick %d found at tick %d", ev.Tick(), p.CurrentTick())
			}
			if got := Digest(p); got != ev.Digest {
				return p, res, oerror.New(game.ErrorRecordingDesync, ev.Tick(), got, ev.Digest)
			}
			res.Verified++
		}
	}
	return p, res, nil
}
