package sim

// Clock is the simulated timeline, in microseconds since power-on.
// Simulated peripherals schedule their events on it; time only moves when
// the tick source waits.
type Clock struct {
	now    uint64
	timers timerList
}

// NewClock creates a clock at time zero
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the current virtual time in µs
func (c *Clock) Now() uint64 {
	return c.now
}

// Schedule adds a timer. A WakeTime at or before Now fires on the next Advance.
func (c *Clock) Schedule(t *Timer) {
	c.timers.insert(t)
}

// Cancel removes a scheduled timer
func (c *Clock) Cancel(t *Timer) {
	c.timers.remove(t)
}

// At runs fn once at virtual time t
func (c *Clock) At(t uint64, fn func()) {
	c.Schedule(&Timer{
		WakeTime: t,
		Handler: func(*Timer) uint8 {
			fn()
			return SF_DONE
		},
	})
}

// Advance moves time forward us microseconds, one at a time, firing every
// timer that falls due.
func (c *Clock) Advance(us uint64) {
	for ; us > 0; us-- {
		c.now++
		c.timers.dispatch(c.now)
	}
}
