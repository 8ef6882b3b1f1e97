package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// TimingEvent captures a measurement event for post-mortem analysis
type TimingEvent struct {
	EventType uint8  // Event type code
	Seq       uint32 // Monotonic sequence number
	Value1    uint32 // Context-dependent value
	Value2    uint32 // Context-dependent value
}

// Event type codes
const (
	EvtCycleStart = 1 // ResetAndArm: v1=cycle
	EvtOverflow   = 2 // Overflow harvested: v1=tally, v2=raw count
	EvtCycleEnd   = 3 // Stop: v1=tally, v2=raw count
	EvtMeasured   = 4 // Measurement emitted: v1=cycle, v2=frequency
)

const (
	TimingRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active.
	// Off by default: printing inside a measurement window skews nothing, but
	// printing between windows delays the next cycle.
	debugEnabled bool = false

	// Timing capture ring buffer (non-blocking, for post-mortem)
	timingRing     [TimingRingSize]TimingEvent
	timingRingHead uint8
	timingSeq      uint32
	timingEnabled  bool = true
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// SetTimingEnabled turns event capture on or off
func SetTimingEnabled(enabled bool) {
	timingEnabled = enabled
}

// RecordTiming captures an event in the ring buffer.
// It never blocks and never allocates, so it is safe inside a delay loop.
func RecordTiming(eventType uint8, value1, value2 uint32) {
	if !timingEnabled {
		return
	}
	idx := timingRingHead
	timingSeq++
	timingRing[idx] = TimingEvent{
		EventType: eventType,
		Seq:       timingSeq,
		Value1:    value1,
		Value2:    value2,
	}
	timingRingHead = (idx + 1) % TimingRingSize
}

// TimingEvents returns the captured events, oldest first
func TimingEvents() []TimingEvent {
	events := make([]TimingEvent, 0, TimingRingSize)
	start := timingRingHead
	for i := uint8(0); i < TimingRingSize; i++ {
		evt := timingRing[(start+i)%TimingRingSize]
		if evt.EventType == 0 {
			continue
		}
		events = append(events, evt)
	}
	return events
}

// DumpTimingRing outputs the timing ring buffer through the debug writer
func DumpTimingRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[TIMING] === Timing Ring Dump ===")
	for _, evt := range TimingEvents() {
		var name string
		switch evt.EventType {
		case EvtCycleStart:
			name = "CYCLE_START"
		case EvtOverflow:
			name = "OVERFLOW"
		case EvtCycleEnd:
			name = "CYCLE_END"
		case EvtMeasured:
			name = "MEASURED"
		default:
			name = "UNKNOWN"
		}

		debugPrintln("[TIMING] " + name +
			" seq=" + utoa(evt.Seq) +
			" v1=" + utoa(evt.Value1) +
			" v2=" + utoa(evt.Value2))
	}
	debugPrintln("[TIMING] === End Dump ===")
}

// ClearTimingRing clears the timing buffer
func ClearTimingRing() {
	for i := range timingRing {
		timingRing[i] = TimingEvent{}
	}
	timingRingHead = 0
	timingSeq = 0
}
