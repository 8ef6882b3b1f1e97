//go:build rp2040

package main

import (
	"machine"

	"capmeter/core"
	"capmeter/targets/pio"
)

// Set at link time: -ldflags "-X main.build=... -X main.debug=1"
var (
	build string
	debug string
)

// Board wiring
var (
	counterPin = machine.GPIO15 // PWM slice 7, channel B

	lcdPins = LCDPins{
		Data: [4]machine.Pin{machine.GPIO10, machine.GPIO11, machine.GPIO12, machine.GPIO13},
		E:    machine.GPIO9,
		RS:   machine.GPIO8,
	}
)

// startupSettleMS lets the display controller and the oscillator settle
// before the first window
const startupSettleMS = 500

func main() {
	// Disable watchdog on boot to clear any previous state
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	machine.Serial.Configure(machine.UARTConfig{BaudRate: 115200})
	out := serialWriter{}

	core.SetDebugWriter(func(s string) {
		out.WriteString("[" + itoa(int(uptimeMicros()/1000)) + "] " + s + "\r\n")
	})
	core.SetDebugEnabled(debug == "1")

	cfg := core.DefaultConfig()
	cfg.ClockHz = machine.CPUFrequency()
	if err := cfg.Validate(); err != nil {
		halt(out, "config: "+err.Error())
	}

	ticks, err := pio.NewTickSource(cfg.ClockHz)
	if err != nil {
		halt(out, "tick source: "+err.Error())
	}

	counter, err := NewPWMEdgeCounter(counterPin)
	if err != nil {
		halt(out, "counter: "+err.Error())
	}

	engine := core.NewMeasurementEngine(cfg, ticks, counter)
	engine.SetOutput(out)

	lcd, err := NewLCD(lcdPins)
	if err != nil {
		// keep measuring on the serial output alone
		core.DebugPrintln("lcd: " + err.Error())
	} else {
		engine.SetDisplay(lcd)
	}

	engine.Delay().Milliseconds(startupSettleMS)
	engine.Banner(counter.Name()+", "+ticks.Name()+" timebase", build)

	engine.Run()
}

// serialWriter adapts machine.Serial to io.Writer
type serialWriter struct{}

func (serialWriter) Write(p []byte) (int, error) {
	return machine.Serial.Write(p)
}

func (w serialWriter) WriteString(s string) {
	w.Write([]byte(s))
}

// halt reports a fatal startup error once a second, forever
func halt(out serialWriter, msg string) {
	for {
		out.WriteString(msg + "\r\n")
		start := uptimeMicros()
		for uptimeMicros()-start < 1000000 {
		}
	}
}

// itoa converts int to string without importing strconv (for embedded)
func itoa(i int) string {
	if i == 0 {
		return "0"
	}

	negative := i < 0
	if negative {
		i = -i
	}

	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}

	if negative {
		pos--
		buf[pos] = '-'
	}

	return string(buf[pos:])
}
