package game

// Clock reports simulated time in seconds.
type Clock interface {
	Now() float64
}

// TickClock is a Clock that only moves when the owning tick loop advances it, which keeps every
// timestamp comparison deterministic across replays.
type TickClock struct {
	now  float64
	tick uint64
}

// Advance moves the clock forward by dt seconds and counts one tick.
func (c *TickClock) Advance(dt float32) {
	c.now += float64(dt)
	c.tick++
}

// Now ...
func (c *TickClock) Now() float64 {
	return c.now
}

// Tick returns the amount of ticks the clock has been advanced by.
func (c *TickClock) Tick() uint64 {
	return c.tick
}

// Since returns the seconds elapsed since the given timestamp on clock c.
func Since(c Clock, t float64) float32 {
	return float32(c.Now() - t)
}
