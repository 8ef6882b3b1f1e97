//go:build rp2040

package pio

// PIO tick source
//
// A one-instruction program raises a PIO IRQ flag on every cycle of a state
// machine clocked at exactly 1 MHz. The flag latches like a timer overflow
// flag: WaitTick spins until it is set and clears it, so each return marks
// one elapsed microsecond without involving the CPU clock.

import (
	"errors"
	"runtime/volatile"
	"unsafe"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"capmeter/core"
)

// irq nowait 0 (IRQ opcode 0b110, clr=0 wait=0, index 0)
const irqSet0 = 0xC000

const (
	tickIRQ       = 0
	tickIRQMask   = 1 << tickIRQ
	tickPIOOrigin = -1 // any free slot
)

// ErrNoStateMachine is returned when every PIO state machine is taken
var ErrNoStateMachine = errors.New("no free PIO state machine")

// TickSource implements core.TickSource on a PIO state machine
type TickSource struct {
	pio    *rp2pio.PIO
	ctrl   *volatile.Register32
	sm     rp2pio.StateMachine
	offset uint8
	pioNum uint8
	smNum  uint8
}

// NewTickSource claims a state machine and starts it ticking at 1 MHz.
// cpuHz must be a whole number of MHz (see core.Config.Validate).
func NewTickSource(cpuHz uint32) (*TickSource, error) {
	pioNum, smNum, ok := allocatePIO()
	if !ok {
		return nil, ErrNoStateMachine
	}

	pioHW := rp2pio.PIO0
	if pioNum == 1 {
		pioHW = rp2pio.PIO1
	}
	t := &TickSource{
		pio:    pioHW,
		sm:     pioHW.StateMachine(smNum),
		ctrl:   (*volatile.Register32)(unsafe.Pointer(ctrlAddr(pioNum))),
		pioNum: pioNum,
		smNum:  smNum,
	}
	if err := t.init(cpuHz); err != nil {
		releasePIO(pioNum, smNum)
		return nil, err
	}
	return t, nil
}

func (t *TickSource) init(cpuHz uint32) error {
	t.sm.TryClaim()

	program := []uint16{irqSet0}
	offset, err := t.pio.AddProgram(program, tickPIOOrigin)
	if err != nil {
		return err
	}
	t.offset = offset

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetWrap(offset, offset)
	// one instruction per µs
	cfg.SetClkDivIntFrac(uint16(cpuHz/core.TickHz), 0)

	t.sm.Init(offset, cfg)
	t.pio.ClearIRQ(tickIRQMask)
	t.sm.SetEnabled(true)
	return nil
}

// WaitTick spins until the state machine raises the next tick, then clears it
func (t *TickSource) WaitTick() {
	for t.pio.GetIRQ()&tickIRQMask == 0 {
	}
	t.pio.ClearIRQ(tickIRQMask)
}

// ClearPending restarts the state machine together with its clock divider,
// so the next tick is a full microsecond away, and drops a latched tick
func (t *TickSource) ClearPending() {
	t.ctrl.SetBits(restartMask(t.smNum))
	t.pio.ClearIRQ(tickIRQMask)
}

// Name describes the tick source for the startup banner
func (t *TickSource) Name() string {
	return "PIO" + string(rune('0'+t.pioNum)) + " SM" + string(rune('0'+t.smNum))
}

var _ core.TickSource = (*TickSource)(nil)
