package sim

import "capmeter/core"

// TickSource models a 16-bit up-counting timer clocked by the system clock
// and reloaded with -(clock/1MHz), so it overflows once per microsecond.
// Each overflow advances the simulated Clock by 1 µs.
type TickSource struct {
	clock  *Clock
	reload uint16
	timer  uint16 // timer register
	flag   bool   // overflow flag

	waits  uint64 // completed WaitTick calls
	cycles uint64 // system clock cycles elapsed
}

// NewTickSource configures the simulated timer for cfg.ClockHz.
// cfg must have passed Validate.
func NewTickSource(clock *Clock, cfg core.Config) *TickSource {
	reload := cfg.TimerReload()
	return &TickSource{
		clock:  clock,
		reload: reload,
		timer:  reload,
	}
}

// WaitTick runs the timer to its next overflow, clears the flag and returns
func (t *TickSource) WaitTick() {
	for !t.flag {
		t.step()
	}
	t.flag = false
	t.waits++
}

// ClearPending drops an already flagged overflow and restarts the period
func (t *TickSource) ClearPending() {
	t.flag = false
	t.timer = t.reload
}

// step runs the timer up to the overflow in one jump
func (t *TickSource) step() {
	t.cycles += uint64(0x10000 - uint32(t.timer))
	t.timer = t.reload
	t.flag = true
	t.clock.Advance(1)
}

// Reload returns the configured reload value
func (t *TickSource) Reload() uint16 {
	return t.reload
}

// Waits returns the number of completed WaitTick calls
func (t *TickSource) Waits() uint64 {
	return t.waits
}

// Cycles returns the number of system clock cycles the timer has counted
func (t *TickSource) Cycles() uint64 {
	return t.cycles
}
