package session

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/oomph-ac/parkour/internal"
	"github.com/oomph-ac/parkour/player"
	"github.com/oomph-ac/parkour/player/movement"
	"github.com/zeebo/xxh3"
)

// Digest hashes the movement state of the player: its state, position, velocity, momentum, health and
// the ammo of every ability. Two players that went through the same ticks have the same digest.
func Digest(p *player.Player) uint64 {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	c := p.Character()
	buf.WriteByte(byte(c.State))
	for _, v := range c.Body.Position() {
		writeFloat(buf, v)
	}
	for _, v := range c.Body.Velocity() {
		writeFloat(buf, v)
	}
	writeFloat(buf, c.Momentum)
	writeFloat(buf, c.Health)
	if g := p.Gear(); g != nil {
		for _, a := range movement.Abilities() {
			binary.Write(buf, binary.LittleEndian, int32(g.Ammo(a)))
		}
	}
	return xxh3.Hash(buf.Bytes())
}

func writeFloat(buf *bytes.Buffer, v float32) {
	binary.Write(buf, binary.LittleEndian, math.Float32bits(v))
}
