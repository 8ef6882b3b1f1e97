package core

// Capacitance returns the capacitance in farads of the timing capacitor of an
// astable 555 oscillator running at frequencyHz with resistors r1 and r2:
//
//	C = 1.44 / ((R1 + 2*R2) * f)
//
// A zero frequency (no signal, or before the first window completes) yields 0.
func Capacitance(frequencyHz uint32, r1, r2 float64) float64 {
	if frequencyHz == 0 {
		return 0.0
	}
	return 1.44 / ((r1 + 2*r2) * float64(frequencyHz))
}

// CapacitanceEstimate is the capacitance derived from one Measurement
type CapacitanceEstimate struct {
	Farads float64
}

// Microfarads returns the estimate in µF
func (c CapacitanceEstimate) Microfarads() float64 {
	return c.Farads * 1e6
}

// String formats the estimate for the display, e.g. "0.48 uF"
func (c CapacitanceEstimate) String() string {
	return formatFixed2(c.Microfarads()) + " uF"
}

// Estimate applies the configured resistors to a measurement
func (c Config) Estimate(m Measurement) CapacitanceEstimate {
	return CapacitanceEstimate{Farads: Capacitance(m.FrequencyHz, c.R1, c.R2)}
}
