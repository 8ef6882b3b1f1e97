package core

// fakeTicks is a TickSource that advances a reference clock by one
// microsecond per WaitTick and runs onTick after every advance.
type fakeTicks struct {
	now    uint64 // reference clock in µs
	waits  uint64
	clears int
	onTick func(now uint64)
}

func (f *fakeTicks) WaitTick() {
	f.now++
	f.waits++
	if f.onTick != nil {
		f.onTick(f.now)
	}
}

func (f *fakeTicks) ClearPending() {
	f.clears++
}

// fakeCounter is a 16-bit CounterDriver fed by pulse()
type fakeCounter struct {
	count    uint16
	overflow bool
	enabled  bool
	resets   int
}

func (f *fakeCounter) Reset() { f.count = 0; f.resets++ }
func (f *fakeCounter) SetEnabled(enabled bool) { f.enabled = enabled }
func (f *fakeCounter) Count() uint16 { return f.count }
func (f *fakeCounter) Overflowed() bool { return f.overflow }
func (f *fakeCounter) ClearOverflow() { f.overflow = false }

// pulse registers n transitions, honouring the enable bit
func (f *fakeCounter) pulse(n uint32) {
	if !f.enabled {
		return
	}
	for ; n > 0; n-- {
		f.count++
		if f.count == 0 {
			f.overflow = true
		}
	}
}

// fakeDisplay records Print calls
type fakeDisplay struct {
	lines map[uint8]string
	calls int
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{lines: make(map[uint8]string)}
}

func (f *fakeDisplay) Print(text string, line uint8, clearRest bool) error {
	f.calls++
	if clearRest {
		for len(text) < DisplayWidth {
			text += " "
		}
	}
	f.lines[line] = text
	return nil
}

// squareWave returns an onTick hook that feeds hz transitions per second into
// c, spread evenly over the 1e6 ticks of a second.
func squareWave(c *fakeCounter, hz uint64) func(now uint64) {
	return func(now uint64) {
		// transitions in (now-1, now]
		n := now*hz/TickHz - (now-1)*hz/TickHz
		c.pulse(uint32(n))
	}
}
