package game

const (
	// TickRate is the fixed simulation rate in ticks per second.
	TickRate = 60
	// TickDelta is the duration of a single fixed tick in seconds.
	TickDelta = float32(1) / TickRate

	// Epsilon is used for geometric comparisons that should tolerate float32 noise.
	Epsilon = float32(1e-4)
)
