//go:build !tinygo

package core

// State stands in for the saved interrupt mask on hosted Go
type State uintptr

// disableInterrupts is a no-op off the MCU; simulated hardware has no
// interrupt sources that could race a harvest.
func disableInterrupts() State {
	return 0
}

// restoreInterrupts is a no-op off the MCU
func restoreInterrupts(state State) {}
