package core

// ANSI sequences used on the text output
const (
	ansiClearScreen = "\x1b[2J"
	ansiClearEOL    = "\x1b[0K"
)

// DisplayTitle is the fixed first display line
const DisplayTitle = "Capacitance:"

// FrequencyLine returns the text output update for a measurement:
// "\rf=<hz>Hz" followed by clear-to-end-of-line.
func FrequencyLine(m Measurement) string {
	return "\rf=" + utoa(m.FrequencyHz) + "Hz" + ansiClearEOL
}

// Banner clears the terminal and prints the startup header. source names the
// counter backend, build identifies the firmware.
func (e *MeasurementEngine) Banner(source, build string) {
	if e.out == nil {
		return
	}
	e.writeOut(ansiClearScreen)
	e.writeOut("Frequency measurement using " + source + ".\n")
	if build != "" {
		e.writeOut("Build: " + build + "\n")
	}
	e.writeOut("\n")
}

// report hands a finished cycle to the display and the text output.
// Collaborator errors are logged and otherwise ignored; the loop keeps running.
func (e *MeasurementEngine) report(m Measurement, c CapacitanceEstimate) {
	if e.display != nil {
		if err := e.display.Print(DisplayTitle, 1, true); err != nil {
			DebugPrintln("display: " + err.Error())
		}
		if err := e.display.Print(c.String(), 2, true); err != nil {
			DebugPrintln("display: " + err.Error())
		}
	}

	if e.out != nil {
		e.writeOut(FrequencyLine(m))
	}

	if IsDebugEnabled() {
		DebugPrintln("cycle=" + utoa(e.cycles) + " f=" + utoa(m.FrequencyHz) + "Hz C=" + c.String())
	}
}

func (e *MeasurementEngine) writeOut(s string) {
	if _, err := e.out.Write([]byte(s)); err != nil {
		DebugPrintln("output: " + err.Error())
	}
}
