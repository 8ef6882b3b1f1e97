//go:build rp2040

package main

import (
	"errors"
	"machine"

	"tinygo.org/x/drivers/hd44780"

	"capmeter/core"
)

const lcdLines = 2

// ErrBadLine is returned for a display line outside 1..2
var ErrBadLine = errors.New("lcd line out of range")

// LCD drives a 16x2 HD44780 character display over a 4-bit bus.
// It implements core.Display.
type LCD struct {
	dev hd44780.Device
	buf [core.DisplayWidth]byte
}

// LCDPins is the 4-bit HD44780 wiring
type LCDPins struct {
	Data [4]machine.Pin // D4..D7
	E    machine.Pin
	RS   machine.Pin
}

// NewLCD configures the display and clears it. RW is tied low.
func NewLCD(pins LCDPins) (*LCD, error) {
	dev, err := hd44780.NewGPIO4Bit(pins.Data[:], pins.E, pins.RS, machine.NoPin)
	if err != nil {
		return nil, err
	}
	l := &LCD{dev: dev}
	if err := l.dev.Configure(hd44780.Config{
		Width:  core.DisplayWidth,
		Height: lcdLines,
	}); err != nil {
		return nil, err
	}
	return l, nil
}

// Print writes text at the start of line (1 or 2). Text beyond the display
// width is cut; with clearRest the remainder of the line is blanked.
func (l *LCD) Print(text string, line uint8, clearRest bool) error {
	if line < 1 || line > lcdLines {
		return ErrBadLine
	}

	n := copy(l.buf[:], text)
	if clearRest {
		for i := n; i < len(l.buf); i++ {
			l.buf[i] = ' '
		}
		n = len(l.buf)
	}

	l.dev.SetCursor(0, line-1)
	if _, err := l.dev.Write(l.buf[:n]); err != nil {
		return err
	}
	return l.dev.Display()
}

var _ core.Display = (*LCD)(nil)
