package core

// CounterDriver is the abstract 16-bit event counter that core code uses.
// The hardware increments the count on every transition of the external
// signal while enabled and raises a sticky overflow flag when it wraps
// from 0xFFFF to 0.
type CounterDriver interface {
	// Reset zeroes the count register. It does not touch the overflow flag.
	Reset()

	// SetEnabled starts (true) or stops (false) counting
	SetEnabled(enabled bool)

	// Count returns the current count register
	Count() uint16

	// Overflowed reports whether the count wrapped since the flag was last cleared
	Overflowed() bool

	// ClearOverflow clears the overflow flag
	ClearOverflow()
}
