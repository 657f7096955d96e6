package event

import (
	"bytes"
	"encoding/binary"

	"github.com/oomph-ac/parkour/player/input"
)

// InputEvent is the input a character received on one tick.
type InputEvent struct {
	NopEvent

	// DT is the time step the tick was simulated with.
	DT float32
	// Pressed and Released are the keys that went down or up before the tick, in order.
	Pressed  []input.Key
	Released []input.Key
	// MoveX and MoveZ are the local movement axes.
	MoveX, MoveZ float32
	// Yaw and Pitch are the camera angles after look input was applied.
	Yaw, Pitch float32
}

func (InputEvent) ID() byte {
	return EventIDInput
}

func (ev InputEvent) Encode() []byte {
	return encode(ev, func(buf *bytes.Buffer) {
		writeFloat32(buf, ev.DT)
		writeKeys(buf, ev.Pressed)
		writeKeys(buf, ev.Released)
		writeFloat32(buf, ev.MoveX)
		writeFloat32(buf, ev.MoveZ)
		writeFloat32(buf, ev.Yaw)
		writeFloat32(buf, ev.Pitch)
	})
}

func decodeInput(r *reader, tick uint64) InputEvent {
	ev := InputEvent{NopEvent: NopEvent{EvTick: tick}}
	ev.DT = r.float32()
	ev.Pressed = readKeys(r)
	ev.Released = readKeys(r)
	ev.MoveX = r.float32()
	ev.MoveZ = r.float32()
	ev.Yaw = r.float32()
	ev.Pitch = r.float32()
	return ev
}

func writeKeys(buf *bytes.Buffer, keys []input.Key) {
	binary.Write(buf, binary.LittleEndian, uint16(len(keys)))
	for _, k := range keys {
		buf.WriteByte(byte(k))
	}
}

func readKeys(r *reader) []input.Key {
	n := int(r.uint16())
	if n == 0 || r.err != nil {
		return nil
	}
	keys := make([]input.Key, 0, n)
	for i := 0; i < n && r.err == nil; i++ {
		keys = append(keys, input.Key(r.uint8()))
	}
	return keys
}
