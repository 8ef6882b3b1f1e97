package core

import "errors"

// Fixed measurement parameters
const (
	// WindowMS is the gate time of one measurement cycle. A one second window
	// makes the raw count the frequency in Hz.
	WindowMS = 1000

	// TickHz is the rate of the tick source (1 µs resolution)
	TickHz = 1000000

	// CounterBits is the width of the hardware event counter
	CounterBits = 16

	// DefaultClockHz is the reference system clock
	DefaultClockHz = 72000000
)

// Configuration errors
var (
	ErrClockNotWholeMHz  = errors.New("clock frequency is not a whole number of MHz")
	ErrClockTooSlow      = errors.New("clock frequency below tick resolution")
	ErrInvalidResistance = errors.New("resistor values must be positive")
	ErrWindowFixed       = errors.New("measurement window is fixed at 1000 ms")
)

// Config holds the constants consumed by the measurement engine
type Config struct {
	ClockHz  uint32  `json:"clock_hz"`  // System clock feeding the tick timer
	R1       float64 `json:"r1"`        // Oscillator resistor R1 in ohms
	R2       float64 `json:"r2"`        // Oscillator resistor R2 in ohms
	WindowMS uint32  `json:"window_ms"` // Gate time, must be WindowMS
}

// DefaultConfig returns the reference configuration: 72MHz, 1k/1k resistors
func DefaultConfig() Config {
	return Config{
		ClockHz:  DefaultClockHz,
		R1:       1000,
		R2:       1000,
		WindowMS: WindowMS,
	}
}

// Validate rejects configurations the delay timing cannot honour.
// This runs once at startup; nothing downstream re-checks.
func (c Config) Validate() error {
	if c.ClockHz < TickHz {
		return ErrClockTooSlow
	}
	if c.ClockHz%TickHz != 0 {
		return ErrClockNotWholeMHz
	}
	if !(c.R1 > 0) || !(c.R2 > 0) {
		return ErrInvalidResistance
	}
	if c.WindowMS != WindowMS {
		return ErrWindowFixed
	}
	return nil
}

// TicksPerMicrosecond returns the number of clock cycles in one tick
func (c Config) TicksPerMicrosecond() uint32 {
	return c.ClockHz / TickHz
}

// TimerReload returns the value loaded into a 16-bit up-counting timer so that
// it overflows after exactly one microsecond: -(clock/1MHz).
func (c Config) TimerReload() uint16 {
	return uint16(-int32(c.TicksPerMicrosecond()))
}
