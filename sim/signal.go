package sim

// SquareWave drives a Counter with a periodic signal of a whole number of
// transitions per second. Transition k (k >= 0) happens at
//
//	origin + (k*1e6 + phase) / hz   µs (integer division)
//
// so every one-second window (t, t+1s] with t at or after the start holds
// exactly hz transitions, whatever the phase.
type SquareWave struct {
	clock   *Clock
	counter *Counter
	hz      uint64
	phase   uint64
	origin  uint64
	k       uint64
	running bool
	timer   Timer
}

// NewSquareWave creates a stopped generator wired to counter
func NewSquareWave(clock *Clock, counter *Counter, hz uint64) *SquareWave {
	s := &SquareWave{
		clock:   clock,
		counter: counter,
		hz:      hz,
	}
	s.timer.Handler = s.fire
	return s
}

// SetPhase offsets the transitions, in millionths of a period
func (s *SquareWave) SetPhase(phase uint64) {
	s.phase = phase % 1000000
}

// Frequency returns the configured frequency in Hz
func (s *SquareWave) Frequency() uint64 {
	return s.hz
}

// SetFrequency retunes the generator, restarting it if it runs
func (s *SquareWave) SetFrequency(hz uint64) {
	running := s.running
	s.Stop()
	s.hz = hz
	if running {
		s.Start()
	}
}

// Start begins emitting transitions from the current time
func (s *SquareWave) Start() {
	if s.running || s.hz == 0 {
		return
	}
	s.running = true
	s.origin = s.clock.Now()
	s.k = 0
	// transitions due right now happen now, not on the next tick
	if s.fire(&s.timer) == SF_RESCHEDULE {
		s.clock.Schedule(&s.timer)
	}
}

// Stop halts the generator
func (s *SquareWave) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.clock.Cancel(&s.timer)
}

func (s *SquareWave) edgeTime(k uint64) uint64 {
	return s.origin + (k*1000000+s.phase)/s.hz
}

func (s *SquareWave) fire(t *Timer) uint8 {
	if !s.running {
		return SF_DONE
	}

	now := s.clock.Now()
	var n uint32
	for s.edgeTime(s.k) <= now {
		n++
		s.k++
	}
	if n > 0 {
		s.counter.Pulse(n)
	}

	t.WakeTime = s.edgeTime(s.k)
	return SF_RESCHEDULE
}
