package event

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/oomph-ac/parkour/internal"
	"github.com/oomph-ac/parkour/oerror"
)

// EventsVersion is the version of the event encoding. Recordings holding another version cannot be
// decoded.
const EventsVersion = "1"

const (
	_ = iota
	EventIDInput
	EventIDTick
	EventIDPreferences
)

// Event is a recorded occurrence in the life of a character, stamped with the tick it happened on.
type Event interface {
	ID() byte
	Encode() []byte

	Tick() uint64
}

// NopEvent holds the tick stamp shared by every event.
type NopEvent struct {
	EvTick uint64
}

func (n NopEvent) Tick() uint64 {
	return n.EvTick
}

// WriteEventHeader writes the ID and tick of the event.
func WriteEventHeader(ev Event, buf *bytes.Buffer) {
	buf.WriteByte(ev.ID())
	binary.Write(buf, binary.LittleEndian, ev.Tick())
}

// encode runs write on a pooled buffer after the header of the event has been written, and returns a
// copy of the result.
func encode(ev Event, write func(buf *bytes.Buffer)) []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	WriteEventHeader(ev, buf)
	write(buf)
	return bytes.Clone(buf.Bytes())
}

// DecodeEvents decodes every event in dat.
func DecodeEvents(dat []byte) ([]Event, error) {
	buf := bytes.NewBuffer(dat)

	var events []Event
	for buf.Len() > 0 {
		ev, err := DecodeEvent(buf)
		if err != nil {
			return events, oerror.New("error decoding event %d: %v", len(events), err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// DecodeEvent decodes a single event from the buffer.
func DecodeEvent(buf *bytes.Buffer) (Event, error) {
	r := reader{buf: buf}
	id := r.uint8()
	tick := r.uint64()
	if r.err != nil {
		return nil, r.err
	}

	var ev Event
	switch id {
	case EventIDInput:
		ev = decodeInput(&r, tick)
	case EventIDTick:
		ev = TickEvent{NopEvent: NopEvent{EvTick: tick}, Digest: r.uint64()}
	case EventIDPreferences:
		ev = PreferencesEvent{
			NopEvent:      NopEvent{EvTick: tick},
			HoldWallclimb: r.bool(),
			HoldWallrun:   r.bool(),
		}
	default:
		return nil, oerror.New("unknown event: %d", id)
	}
	if r.err != nil {
		return nil, r.err
	}
	return ev, nil
}

// reader reads little endian values from a buffer. The first short read is kept in err and every
// read after it returns zero values.
type reader struct {
	buf *bytes.Buffer
	err error
}

func (r *reader) next(n int) []byte {
	if r.err != nil {
		return make([]byte, n)
	}
	if r.buf.Len() < n {
		r.err = oerror.New("unexpected end of data: need %d bytes, have %d", n, r.buf.Len())
		return make([]byte, n)
	}
	return r.buf.Next(n)
}

func (r *reader) uint8() uint8 {
	return r.next(1)[0]
}

func (r *reader) bool() bool {
	return r.uint8() == 1
}

func (r *reader) uint16() uint16 {
	return binary.LittleEndian.Uint16(r.next(2))
}

func (r *reader) uint64() uint64 {
	return binary.LittleEndian.Uint64(r.next(8))
}

func (r *reader) float32() float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(r.next(4)))
}

func writeBool(buf *bytes.Buffer, v bool) {
	if v {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
}

func writeFloat32(buf *bytes.Buffer, v float32) {
	binary.Write(buf, binary.LittleEndian, math.Float32bits(v))
}
