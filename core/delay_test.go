package core

import "testing"

func TestDelayMicroseconds(t *testing.T) {
	testCases := []uint32{0, 1, 2, 40, 249, 250, 1000, 65535, 100000}

	for _, us := range testCases {
		ticks := &fakeTicks{}
		d := NewDelayEngine(ticks, nil)

		d.Microseconds(us)

		if ticks.waits != uint64(us) {
			t.Errorf("Microseconds(%d): expected %d WaitTick calls, got %d", us, us, ticks.waits)
		}
		if ticks.now != uint64(us) {
			t.Errorf("Microseconds(%d): reference clock advanced %d µs", us, ticks.now)
		}
	}
}

func TestDelayMillisecondsSumsToThousand(t *testing.T) {
	var total uint32
	for _, us := range msSchedule {
		total += us
	}
	if total != 1000 {
		t.Fatalf("millisecond schedule sums to %d µs, expected 1000", total)
	}

	for _, ms := range []uint32{0, 1, 2, 5, 20, 1000} {
		ticks := &fakeTicks{}
		d := NewDelayEngine(ticks, nil)

		d.Milliseconds(ms)

		if ticks.now != uint64(ms)*1000 {
			t.Errorf("Milliseconds(%d): expected %d µs, got %d", ms, ms*1000, ticks.now)
		}
		// one ClearPending per sub-delay
		if ticks.clears != int(ms)*len(msSchedule) {
			t.Errorf("Milliseconds(%d): expected %d sub-delays, got %d", ms, int(ms)*len(msSchedule), ticks.clears)
		}
	}
}

func TestDelayHarvestsOverflowEveryTick(t *testing.T) {
	hw := &fakeCounter{}
	counter := NewEventCounter(hw)
	ticks := &fakeTicks{}
	d := NewDelayEngine(ticks, counter.Tally())

	counter.ResetAndArm()
	counter.Start()

	// one wrap on each of ticks 10, 20 and 30
	ticks.onTick = func(now uint64) {
		if now%10 == 0 && now <= 30 {
			hw.pulse(0x10000)
		}
	}
	d.Microseconds(50)
	counter.Stop()

	if got := counter.Tally().Count(); got != 3 {
		t.Errorf("expected 3 harvested overflows, got %d", got)
	}
	if hw.Overflowed() {
		t.Errorf("overflow flag should be cleared by the harvest")
	}
}

func TestDelayDoesNotHarvestWhenIdle(t *testing.T) {
	hw := &fakeCounter{}
	counter := NewEventCounter(hw)
	ticks := &fakeTicks{}
	d := NewDelayEngine(ticks, counter.Tally())

	hw.overflow = true
	d.Microseconds(10)

	if counter.Tally().Count() != 0 {
		t.Errorf("tally changed while the counter was not armed")
	}
	if !hw.Overflowed() {
		t.Errorf("flag should be left for ResetAndArm to clear")
	}
}
