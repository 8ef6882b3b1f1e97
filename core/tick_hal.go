package core

// TickSource is the abstract 1 µs timebase that core code uses.
// Platform-specific implementations own the actual timer hardware.
type TickSource interface {
	// WaitTick blocks until the timer overflows (one microsecond after the
	// previous overflow), then clears the overflow flag and returns.
	WaitTick()

	// ClearPending drops an overflow that is already flagged so that the next
	// WaitTick waits for a full period.
	ClearPending()
}
