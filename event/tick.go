package event

import (
	"bytes"
	"encoding/binary"
)

// TickEvent is written after a tick was simulated and holds the digest of the character state the
// tick produced.
type TickEvent struct {
	NopEvent

	Digest uint64
}

func (TickEvent) ID() byte {
	return EventIDTick
}

func (ev TickEvent) Encode() []byte {
	return encode(ev, func(buf *bytes.Buffer) {
		binary.Write(buf, binary.LittleEndian, ev.Digest)
	})
}

// PreferencesEvent is written when the movement toggles of the player changed.
type PreferencesEvent struct {
	NopEvent

	HoldWallclimb bool
	HoldWallrun   bool
}

func (PreferencesEvent) ID() byte {
	return EventIDPreferences
}

func (ev PreferencesEvent) Encode() []byte {
	return encode(ev, func(buf *bytes.Buffer) {
		writeBool(buf, ev.HoldWallclimb)
		writeBool(buf, ev.HoldWallrun)
	})
}
