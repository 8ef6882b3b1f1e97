package core

import "io"

// Measurement is the result of one gate window
type Measurement struct {
	FrequencyHz uint32
}

// MeasurementEngine owns every piece of measurement state: the tick source,
// the event counter with its overflow tally, the delay engine harvesting it,
// and the collaborators results are reported to. Build it once at startup.
type MeasurementEngine struct {
	cfg     Config
	counter *EventCounter
	delay   *DelayEngine

	display Display   // optional
	out     io.Writer // optional

	cycles uint32
	last   Measurement
}

// NewMeasurementEngine wires the engine. cfg must already have passed
// Validate; timing constants are not re-checked here.
func NewMeasurementEngine(cfg Config, ticks TickSource, hw CounterDriver) *MeasurementEngine {
	counter := NewEventCounter(hw)
	return &MeasurementEngine{
		cfg:     cfg,
		counter: counter,
		delay:   NewDelayEngine(ticks, counter.Tally()),
	}
}

// SetDisplay attaches the character display
func (e *MeasurementEngine) SetDisplay(d Display) {
	e.display = d
}

// SetOutput attaches the text output stream
func (e *MeasurementEngine) SetOutput(w io.Writer) {
	e.out = w
}

// Config returns the engine configuration
func (e *MeasurementEngine) Config() Config {
	return e.cfg
}

// Delay returns the delay engine so collaborators share the calibrated timebase
func (e *MeasurementEngine) Delay() *DelayEngine {
	return e.delay
}

// Counter returns the event counter
func (e *MeasurementEngine) Counter() *EventCounter {
	return e.counter
}

// Cycles returns the number of completed measurement cycles
func (e *MeasurementEngine) Cycles() uint32 {
	return e.cycles
}

// Last returns the most recent measurement (zero before the first cycle)
func (e *MeasurementEngine) Last() Measurement {
	return e.last
}

// Measure runs one gate window and returns the frequency in Hz.
// The delay is the only suspension point; overflow harvesting happens inside it.
func (e *MeasurementEngine) Measure() Measurement {
	RecordTiming(EvtCycleStart, e.cycles+1, 0)

	e.counter.ResetAndArm()
	e.counter.Start()
	e.delay.Milliseconds(e.cfg.WindowMS)
	e.counter.Stop()

	m := Measurement{FrequencyHz: e.counter.Read()}
	e.cycles++
	e.last = m

	RecordTiming(EvtMeasured, e.cycles, m.FrequencyHz)
	return m
}

// RunCycle measures once and reports the result to the collaborators
func (e *MeasurementEngine) RunCycle() (Measurement, CapacitanceEstimate) {
	m := e.Measure()
	c := e.cfg.Estimate(m)
	e.report(m, c)
	return m, c
}

// RunCycles runs n measure/report cycles
func (e *MeasurementEngine) RunCycles(n int) {
	for i := 0; i < n; i++ {
		e.RunCycle()
	}
}

// Run is the firmware main loop. It never returns.
func (e *MeasurementEngine) Run() {
	for {
		e.RunCycle()
	}
}
