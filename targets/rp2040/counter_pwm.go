//go:build rp2040

package main

import (
	"errors"
	"machine"
	"runtime/volatile"
	"unsafe"

	"capmeter/core"
)

// RP2040 PWM peripheral memory map
const (
	pwmBase        = 0x40050000
	pwmSliceStride = 0x14
	pwmCSR         = 0x00 // control and status
	pwmDIV         = 0x04 // clock divider, 8.4 fixed point
	pwmCTR         = 0x08 // counter
	pwmCC          = 0x0C // compare values
	pwmTOP         = 0x10 // wrap value
	pwmINTR        = pwmBase + 0xA4 // raw interrupts, write 1 to clear

	pwmCSREnable       = 1 << 0
	pwmCSRDivModeShift = 4
	pwmCSRDivModeMask  = 3 << pwmCSRDivModeShift
	pwmDivModeRising   = 2 // count rising edges on channel B

	pwmDivOne = 1 << 4 // integer part 1, fraction 0
)

// ErrNotChannelB is returned for a pin that cannot gate a PWM counter
var ErrNotChannelB = errors.New("edge counting needs an odd GPIO (PWM channel B)")

// PWMEdgeCounter uses a PWM slice as a 16-bit rising edge counter.
// The slice wraps at 0xFFFF and latches its wrap in the raw interrupt
// register, which serves as the overflow flag.
type PWMEdgeCounter struct {
	pin   machine.Pin
	slice uint8
	csr   *volatile.Register32
	div   *volatile.Register32
	ctr   *volatile.Register32
	top   *volatile.Register32
	intr  *volatile.Register32
}

// NewPWMEdgeCounter configures pin as the counter input. The counter is
// left stopped.
func NewPWMEdgeCounter(pin machine.Pin) (*PWMEdgeCounter, error) {
	if pin&1 == 0 {
		return nil, ErrNotChannelB
	}

	// RP2040: GPIO pin N maps to slice (N >> 1) & 0x7
	slice := uint8((uint32(pin) >> 1) & 0x7)
	base := uintptr(pwmBase) + uintptr(slice)*pwmSliceStride
	c := &PWMEdgeCounter{
		pin:   pin,
		slice: slice,
		csr:   reg(base + pwmCSR),
		div:   reg(base + pwmDIV),
		ctr:   reg(base + pwmCTR),
		top:   reg(base + pwmTOP),
		intr:  reg(pwmINTR),
	}

	pin.Configure(machine.PinConfig{Mode: machine.PinPWM})

	c.csr.Set(pwmDivModeRising << pwmCSRDivModeShift)
	c.div.Set(pwmDivOne)
	c.top.Set(0xFFFF)
	c.ctr.Set(0)
	c.ClearOverflow()
	return c, nil
}

func reg(addr uintptr) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(addr))
}

func (c *PWMEdgeCounter) Reset() {
	c.ctr.Set(0)
}

func (c *PWMEdgeCounter) SetEnabled(enabled bool) {
	if enabled {
		c.csr.SetBits(pwmCSREnable)
	} else {
		c.csr.ClearBits(pwmCSREnable)
	}
}

func (c *PWMEdgeCounter) Count() uint16 {
	return uint16(c.ctr.Get())
}

func (c *PWMEdgeCounter) Overflowed() bool {
	return c.intr.HasBits(1 << c.slice)
}

func (c *PWMEdgeCounter) ClearOverflow() {
	c.intr.Set(1 << c.slice)
}

// Name describes the counter for the startup banner
func (c *PWMEdgeCounter) Name() string {
	return "PWM slice " + itoa(int(c.slice)) + " on GPIO" + itoa(int(c.pin))
}

var _ core.CounterDriver = (*PWMEdgeCounter)(nil)
