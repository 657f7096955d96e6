package player

import "github.com/oomph-ac/parkour/player/movement"

// Handler receives the events of a Player. Handler methods are called on the goroutine ticking the
// player.
type Handler interface {
	// HandleStateChange is called at the end of a tick in which the movement state changed.
	HandleStateChange(p *Player, from, to movement.State)
	// HandleRespawn is called when the character was sent back to its spawn point.
	HandleRespawn(p *Player)
	// OnTick is called after every tick.
	OnTick(p *Player)
}

// NopHandler implements Handler without doing anything.
type NopHandler struct{}

func (NopHandler) HandleStateChange(*Player, movement.State, movement.State) {}
func (NopHandler) HandleRespawn(*Player)                                    {}
func (NopHandler) OnTick(*Player)                                           {}
