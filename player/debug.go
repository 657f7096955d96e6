package player

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// Debugger holds the debug toggles of a player.
type Debugger struct {
	// LogMovement logs movement traces and a snapshot of the character every tick.
	LogMovement bool
	// LogInput logs every action dispatched to the moveset.
	LogInput bool
	// LogSounds logs every sound requested by the moveset.
	LogSounds bool
}

// prettySnapshot renders a debug snapshot as key=value pairs in insertion order.
func prettySnapshot(m *orderedmap.OrderedMap[string, any]) string {
	var sb strings.Builder
	for el := m.Front(); el != nil; el = el.Next() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch v := el.Value.(type) {
		case float32:
			fmt.Fprintf(&sb, "%s=%.3f", el.Key, v)
		default:
			fmt.Fprintf(&sb, "%s=%v", el.Key, v)
		}
	}
	return sb.String()
}
