package core

// Event counter states
const (
	CounterIdle     = 0
	CounterCounting = 1
)

// EventCounter counts transitions of the external signal with a 16-bit
// CounterDriver, extended to 32 bits by an OverflowTally.
type EventCounter struct {
	hw    CounterDriver
	tally OverflowTally
	State uint8
}

// NewEventCounter wraps a hardware counter. The counter starts Idle and
// disabled.
func NewEventCounter(hw CounterDriver) *EventCounter {
	c := &EventCounter{
		hw:    hw,
		tally: OverflowTally{hw: hw},
		State: CounterIdle,
	}
	hw.SetEnabled(false)
	return c
}

// Tally returns the overflow tally as a harvesting capability for the
// DelayEngine. The EventCounter keeps ownership.
func (c *EventCounter) Tally() *OverflowTally {
	return &c.tally
}

// ResetAndArm zeroes the hardware count and the tally, clears any pending
// overflow and arms the tally. Counting begins at Start.
func (c *EventCounter) ResetAndArm() {
	c.hw.SetEnabled(false)
	c.hw.Reset()
	c.hw.ClearOverflow()
	c.tally.reset()
	c.tally.armed = true
	c.State = CounterCounting
}

// Start enables hardware counting
func (c *EventCounter) Start() {
	c.hw.SetEnabled(true)
}

// Stop disables hardware counting and freezes the combined value. A wrap
// latched after the last tick's harvest is folded in here; after that the
// tally stops harvesting until the next ResetAndArm.
func (c *EventCounter) Stop() {
	c.hw.SetEnabled(false)
	c.tally.Harvest()
	c.tally.armed = false
	c.State = CounterIdle
	RecordTiming(EvtCycleEnd, c.tally.count, uint32(c.hw.Count()))
}

// Read returns tally*65536 + raw count. Only meaningful after Stop and
// before the next ResetAndArm; wraps silently past 2^32 transitions.
func (c *EventCounter) Read() uint32 {
	return c.tally.count<<CounterBits | uint32(c.hw.Count())
}
