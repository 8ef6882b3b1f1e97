package sim

// Counter models a 16-bit event counter with a sticky overflow flag,
// clocked by transitions of an external signal. It implements
// core.CounterDriver.
type Counter struct {
	count    uint16
	overflow bool
	enabled  bool

	seen    uint64 // transitions presented, enabled or not
	counted uint64 // transitions counted while enabled
}

// NewCounter creates a stopped counter at zero
func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Reset() {
	c.count = 0
}

func (c *Counter) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *Counter) Count() uint16 {
	return c.count
}

func (c *Counter) Overflowed() bool {
	return c.overflow
}

func (c *Counter) ClearOverflow() {
	c.overflow = false
}

// Enabled reports whether the counter is counting
func (c *Counter) Enabled() bool {
	return c.enabled
}

// Pulse presents n signal transitions to the counter
func (c *Counter) Pulse(n uint32) {
	c.seen += uint64(n)
	if !c.enabled {
		return
	}
	c.counted += uint64(n)

	next := uint32(c.count) + n
	if next > 0xFFFF {
		c.overflow = true
	}
	c.count = uint16(next)
}

// Seen returns the total transitions presented to the input pin
func (c *Counter) Seen() uint64 {
	return c.seen
}

// Counted returns the total transitions counted while enabled
func (c *Counter) Counted() uint64 {
	return c.counted
}
