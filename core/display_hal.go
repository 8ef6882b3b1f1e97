package core

// DisplayWidth is the number of characters per display line
const DisplayWidth = 16

// Display is the character display the engine reports to after each cycle.
type Display interface {
	// Print writes text at the start of line (1 or 2). When clearRest is set
	// the remainder of the line is blanked.
	Print(text string, line uint8, clearRest bool) error
}
