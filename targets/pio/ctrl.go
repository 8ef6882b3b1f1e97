package pio

// PIO CTRL register (RP2040 datasheet, PIO: CTRL)
const (
	pio0Base = 0x50200000
	pio1Base = 0x50300000

	ctrlSMRestartShift     = 4 // SM_RESTART, one bit per state machine
	ctrlClkDivRestartShift = 8 // CLKDIV_RESTART, one bit per state machine
)

// ctrlAddr returns the CTRL register address of PIO block pioNum
func ctrlAddr(pioNum uint8) uintptr {
	if pioNum == 1 {
		return pio1Base
	}
	return pio0Base
}

// restartMask returns the CTRL bits that restart state machine smNum and
// its clock divider together. Both bits self-clear. With the divider back at
// phase 0 the next instruction runs one full divider period later.
func restartMask(smNum uint8) uint32 {
	return 1<<(ctrlSMRestartShift+smNum) | 1<<(ctrlClkDivRestartShift+smNum)
}
