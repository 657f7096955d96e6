package player

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/event"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/oerror"
	"github.com/oomph-ac/parkour/player/input"
	"github.com/oomph-ac/parkour/player/movement"
	"github.com/oomph-ac/parkour/settings"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// World is the environment a player moves in. It answers the spatial queries of the moveset and
// integrates the body of the character.
type World interface {
	movement.World
	movement.Interactables
	// Integrate moves the body by its velocity over dt seconds and refreshes its contacts.
	Integrate(b *movement.Body, dt float32)
}

// Animator is a movement.Animator that is advanced once per tick.
type Animator interface {
	movement.Animator
	Tick(dt float32)
}

// Player hosts a single character: it owns the input dispatcher, the moveset and the movement state,
// and steps all of them in a fixed order every tick. A Player must be ticked from one goroutine.
type Player struct {
	log  *logrus.Logger
	name string

	clock      game.TickClock
	character  *movement.Character
	moveset    *movement.Moveset
	dispatcher *input.Dispatcher
	world      World

	settings     settings.Settings
	prefsChanged bool

	gear     movement.Gear
	animator Animator
	feedback movement.Feedback

	// look is the look input received since the last tick, already scaled by the sensitivity.
	look mgl32.Vec2
	// frame is the input of the tick being built, lastFrame the input of the last simulated tick.
	frame, lastFrame event.InputEvent

	Dbg Debugger

	hMutex sync.RWMutex
	h      Handler

	closed atomic.Bool
}

// New creates a player at the spawn position passed. The gear, animator and feedback collaborators
// must be set, usually through component.Register, before the player is ticked. A nil logger discards
// every log.
func New(log *logrus.Logger, name string, w World, spawn mgl32.Vec3, cfg *movement.Config, s settings.Settings) *Player {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	p := &Player{
		log:       log,
		name:      name,
		world:     w,
		character: movement.NewCharacter(spawn, cfg.MaxHealth),
		settings:  s,
		h:         NopHandler{},
	}
	p.dispatcher = input.NewDispatcher(p, &p.clock, nil)
	p.moveset = &movement.Moveset{
		Config:        cfg,
		World:         w,
		Interactables: w,
		Input:         p.dispatcher,
		Clock:         &p.clock,
		Prefs:         s.Preferences(),
		Options: movement.Options{
			Debugf:    p.debugMovement,
			OnRespawn: p.onRespawn,
		},
	}
	return p
}

// Name returns the name of the player.
func (p *Player) Name() string {
	return p.name
}

// Log returns the logger of the player.
func (p *Player) Log() *logrus.Logger {
	return p.log
}

// Config returns the tuning table the player moves with.
func (p *Player) Config() *movement.Config {
	return p.moveset.Config
}

// SetConfig swaps the tuning table of the player. It must not be called while the player is ticking.
func (p *Player) SetConfig(cfg *movement.Config) {
	p.moveset.Config = cfg
}

// Settings returns the player settings.
func (p *Player) Settings() settings.Settings {
	return p.settings
}

// SetSettings replaces the player settings. They are applied on the next tick.
func (p *Player) SetSettings(s settings.Settings) {
	if s.Preferences() != p.settings.Preferences() {
		p.prefsChanged = true
	}
	p.settings = s
}

// Character returns the movement state of the player.
func (p *Player) Character() *movement.Character {
	return p.character
}

// Gear returns the gear of the player, or nil if none was set.
func (p *Player) Gear() movement.Gear {
	return p.gear
}

// Animator returns the animator of the player, or nil if none was set.
func (p *Player) Animator() Animator {
	return p.animator
}

// Feedback returns the feedback sink of the player, or nil if none was set.
func (p *Player) Feedback() movement.Feedback {
	return p.feedback
}

// SetGear ...
func (p *Player) SetGear(g movement.Gear) {
	p.gear = g
	p.moveset.Gear = g
}

// SetAnimator ...
func (p *Player) SetAnimator(a Animator) {
	p.animator = a
	p.moveset.Animator = a
}

// SetFeedback ...
func (p *Player) SetFeedback(f movement.Feedback) {
	p.feedback = f
	p.moveset.Feedback = f
}

// SetTrials sets the time trial controller the player reports to. It may be nil.
func (p *Player) SetTrials(t movement.Trials) {
	p.moveset.Trials = t
}

// SetInteractor sets the handler of interactions with world objects. It may be nil.
func (p *Player) SetInteractor(i movement.Interactor) {
	p.moveset.Interactor = i
}

// CurrentTick returns the amount of ticks the player has been ticked for.
func (p *Player) CurrentTick() uint64 {
	return p.clock.Tick()
}

// Now returns the simulated time of the player in seconds.
func (p *Player) Now() float64 {
	return p.clock.Now()
}

// Ready returns true if every collaborator needed to tick the player was set.
func (p *Player) Ready() bool {
	return p.gear != nil && p.animator != nil && p.feedback != nil
}

// Tick runs one tick of dt seconds: the settings are polled, look input is applied, the inputs are
// dispatched, the moveset steps the character and the world integrates its body.
func (p *Player) Tick(dt float32) {
	if p.closed.Load() {
		return
	}
	if !p.Ready() {
		p.log.WithField("player", p.name).Error("player ticked before its components were registered")
		return
	}
	defer p.recoverTick()

	p.clock.Advance(dt)
	from := p.character.State

	p.moveset.Prefs = p.settings.Preferences()
	p.applyLook()
	p.dispatcher.UpdateInputs()
	p.moveset.Step(p.character, dt)
	p.world.Integrate(&p.character.Body, dt)
	p.animator.Tick(dt)

	p.finishFrame(dt)
	if to := p.character.State; to != from {
		p.log.WithFields(logrus.Fields{"player": p.name, "tick": p.clock.Tick(), "from": from, "to": to}).Debug("state changed")
		p.handler().HandleStateChange(p, from, to)
	}
	if p.Dbg.LogMovement {
		p.log.WithField("player", p.name).Debug(prettySnapshot(p.character.Debug()))
	}
	p.handler().OnTick(p)
	p.prefsChanged = false
}

// recoverTick reports a panic raised while ticking and puts the character back at its spawn point so
// the tick loop survives.
func (p *Player) recoverTick() {
	err := recover()
	if err == nil {
		return
	}
	p.log.WithFields(logrus.Fields{"player": p.name, "tick": p.clock.Tick(), "state": p.character.State}).Errorf("tick panic: %v", err)

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("player", p.name)
		scope.SetTag("state", p.character.State.String())
	})
	hub.Recover(oerror.New(fmt.Sprintf("%v", err)))
	hub.Flush(time.Second * 5)

	p.character = movement.NewCharacter(p.character.Spawn, p.moveset.Config.MaxHealth)
	p.gear.ResetAmmo()
	p.dispatcher.AddInputLock("recover", p.moveset.Config.RespawnLockTime)
}

// Handle sets the handler of the player. A nil handler is replaced by NopHandler.
func (p *Player) Handle(h Handler) {
	if h == nil {
		h = NopHandler{}
	}
	p.hMutex.Lock()
	p.h = h
	p.hMutex.Unlock()
}

func (p *Player) handler() Handler {
	p.hMutex.RLock()
	defer p.hMutex.RUnlock()
	return p.h
}

// HandleAnimationEvent passes an event raised by the animator to the moveset.
func (p *Player) HandleAnimationEvent(name string) {
	p.moveset.OnAnimationEvent(p.character, name)
}

// Close stops the player from being ticked any further.
func (p *Player) Close() error {
	if p.closed.Swap(true) {
		return oerror.New("player %s already closed", p.name)
	}
	p.Handle(nil)
	return nil
}

// Closed returns true if the player was closed.
func (p *Player) Closed() bool {
	return p.closed.Load()
}

func (p *Player) onRespawn(c *movement.Character) {
	p.log.WithFields(logrus.Fields{"player": p.name, "tick": p.clock.Tick(), "spawn": c.Spawn}).Info("respawned")
	p.handler().HandleRespawn(p)
}

func (p *Player) debugMovement(format string, args ...any) {
	if p.Dbg.LogMovement {
		p.log.WithField("player", p.name).Debugf(format, args...)
	}
}
