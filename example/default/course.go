package main

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/player"
	"github.com/oomph-ac/parkour/player/input"
	"github.com/oomph-ac/parkour/player/movement"
	"github.com/oomph-ac/parkour/world"
)

// course builds the demo course: a floor, a low box to vault, a long wall to run along, a climbable
// wall with a ledge on top and a ladder up to the ledge.
func course() *world.World {
	w := world.New()
	w.AddSolid(cube.Box(-100, -1, -100, 100, 0, 100))
	w.AddSolid(cube.Box(-3, 0, 8, 3, 0.6, 9))
	w.AddSolid(cube.Box(2, 0, 14, 2.5, 5, 40))
	w.AddSolid(cube.Box(-6, 0, 44, 6, 3.2, 50))
	w.AddLadder(movement.Ladder{
		Center:   mgl32.Vec3{-8, 1.6, 43.8},
		Rotation: mgl32.QuatIdent(),
		Size:     mgl32.Vec3{1, 3.2, 0.2},
	})
	return w
}

// step is a scripted input applied at a tick of the demo run.
type step struct {
	tick uint64
	do   func(p *player.Player)
}

// script runs forward through the course: a jump over the box, a wallrun along the long wall and a
// climb onto the ledge at the end.
var script = []step{
	{tick: 5, do: func(p *player.Player) { p.SetMoveVector(0, 1) }},
	{tick: 40, do: func(p *player.Player) { p.PressKey(input.KeySpace) }},
	{tick: 44, do: func(p *player.Player) { p.ReleaseKey(input.KeySpace) }},
	{tick: 90, do: func(p *player.Player) { p.Look(4, 0) }},
	{tick: 95, do: func(p *player.Player) { p.PressKey(input.KeySpace) }},
	{tick: 97, do: func(p *player.Player) { p.ReleaseKey(input.KeySpace) }},
	{tick: 100, do: func(p *player.Player) { p.PressKey(input.KeyLeftShift) }},
	{tick: 180, do: func(p *player.Player) { p.ReleaseKey(input.KeyLeftShift) }},
	{tick: 181, do: func(p *player.Player) { p.Look(-4, 0) }},
	{tick: 260, do: func(p *player.Player) { p.PressKey(input.KeySpace) }},
	{tick: 330, do: func(p *player.Player) { p.ReleaseKey(input.KeySpace) }},
	{tick: 400, do: func(p *player.Player) { p.SetMoveVector(0, 0) }},
}

// feed applies the steps of the script due before the next tick of the player.
func feed(p *player.Player) {
	next := p.CurrentTick() + 1
	for _, s := range script {
		if s.tick == next {
			s.do(p)
		}
	}
}
