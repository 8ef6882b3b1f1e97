package sim

import (
	"errors"
	"strings"

	"capmeter/core"
)

// ErrBadLine is returned for a display line other than 1 or 2
var ErrBadLine = errors.New("display line must be 1 or 2")

// Display is a 16x2 character display that keeps its contents in memory
type Display struct {
	lines  [2][]byte
	prints int
}

// NewDisplay creates a blank display
func NewDisplay() *Display {
	d := &Display{}
	for i := range d.lines {
		d.lines[i] = []byte(strings.Repeat(" ", core.DisplayWidth))
	}
	return d
}

// Print writes text from the first column of line, truncated to the width
func (d *Display) Print(text string, line uint8, clearRest bool) error {
	if line != 1 && line != 2 {
		return ErrBadLine
	}
	row := d.lines[line-1]
	j := copy(row, text)
	if clearRest {
		for ; j < len(row); j++ {
			row[j] = ' '
		}
	}
	d.prints++
	return nil
}

// Line returns the contents of line 1 or 2 with trailing blanks removed
func (d *Display) Line(line uint8) string {
	return strings.TrimRight(string(d.lines[line-1]), " ")
}

// Prints returns the number of Print calls
func (d *Display) Prints() int {
	return d.prints
}
