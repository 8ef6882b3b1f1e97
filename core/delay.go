package core

// msSchedule splits one millisecond into the sub-delays DelayMilliseconds
// issues. The parts must sum to 1000.
var msSchedule = [...]uint32{249, 249, 249, 250}

// DelayEngine composes TickSource ticks into busy-wait delays. Each tick it
// also harvests the event counter's overflow flag, which is what lets a
// 16-bit counter measure a full second of a fast signal.
type DelayEngine struct {
	ticks   TickSource
	harvest *OverflowTally
}

// NewDelayEngine creates a delay engine on the given tick source.
// harvest may be nil when no event counter is attached.
func NewDelayEngine(ticks TickSource, harvest *OverflowTally) *DelayEngine {
	return &DelayEngine{
		ticks:   ticks,
		harvest: harvest,
	}
}

// Microseconds busy-waits for exactly us ticks
func (d *DelayEngine) Microseconds(us uint32) {
	if us == 0 {
		return
	}

	d.ticks.ClearPending()
	for i := uint32(0); i < us; i++ {
		d.ticks.WaitTick()
		if d.harvest != nil {
			d.harvest.Harvest()
		}
	}
}

// Milliseconds busy-waits for ms milliseconds
func (d *DelayEngine) Milliseconds(ms uint32) {
	for ; ms != 0; ms-- {
		for _, us := range msSchedule {
			d.Microseconds(us)
		}
	}
}
