//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts masks interrupts so the overflow check-and-clear in
// OverflowTally.Harvest cannot be split by the runtime's own handlers (USB, UART)
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

// restoreInterrupts restores the saved interrupt mask
func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}
