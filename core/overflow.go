package core

// OverflowTally extends a 16-bit CounterDriver by counting its wraparounds in
// software. It is owned by an EventCounter and handed to the DelayEngine as a
// harvesting capability.
//
// Access is single-threaded and ordered in time: the EventCounter resets the
// tally exactly once per cycle (ResetAndArm) and reads it only after Stop; the
// DelayEngine calls Harvest after every tick in between. Nothing else may touch
// it, and no two of these ever run concurrently, so there is no locking.
type OverflowTally struct {
	hw    CounterDriver
	count uint32
	armed bool
}

// Harvest folds a pending hardware overflow into the tally and clears the
// flag. It must run at least once per wraparound of the hardware counter,
// which the per-tick call from DelayEngine guarantees for any signal below
// 65536 transitions per microsecond.
//
// While the counter is not armed the flag is left alone; ResetAndArm clears
// it anyway.
func (t *OverflowTally) Harvest() {
	if !t.armed {
		return
	}

	state := disableInterrupts()
	if t.hw.Overflowed() {
		t.hw.ClearOverflow()
		t.count++
		RecordTiming(EvtOverflow, t.count, uint32(t.hw.Count()))
	}
	restoreInterrupts(state)
}

// Count returns the number of wraparounds harvested since the last reset
func (t *OverflowTally) Count() uint32 {
	return t.count
}

func (t *OverflowTally) reset() {
	t.count = 0
}
