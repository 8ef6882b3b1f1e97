// Package sim is a cycle-level stand-in for the meter's hardware: a 1 µs
// tick timer, a 16-bit event counter and a signal generator sharing one
// virtual clock. It runs the real core engine off the MCU.
package sim

import "capmeter/core"

// Board bundles the simulated peripherals of one meter
type Board struct {
	Clock   *Clock
	Ticks   *TickSource
	Counter *Counter
	Signal  *SquareWave
	Display *Display
}

// NewBoard builds a board for cfg with a stopped generator at hz.
// cfg must have passed Validate.
func NewBoard(cfg core.Config, hz uint64) *Board {
	clock := NewClock()
	counter := NewCounter()
	return &Board{
		Clock:   clock,
		Ticks:   NewTickSource(clock, cfg),
		Counter: counter,
		Signal:  NewSquareWave(clock, counter, hz),
		Display: NewDisplay(),
	}
}

// NewEngine builds a measurement engine on the board's peripherals and
// starts the signal generator.
func (b *Board) NewEngine(cfg core.Config) *core.MeasurementEngine {
	e := core.NewMeasurementEngine(cfg, b.Ticks, b.Counter)
	e.SetDisplay(b.Display)
	b.Signal.Start()
	return e
}
