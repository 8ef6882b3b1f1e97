package core

import (
	"math"
	"testing"
)

func TestCapacitanceZeroFrequency(t *testing.T) {
	for _, r := range [][2]float64{{1000, 1000}, {1, 1e6}, {0, 0}, {4700, 10000}} {
		if got := Capacitance(0, r[0], r[1]); got != 0.0 {
			t.Errorf("Capacitance(0, %v, %v) = %v, expected 0", r[0], r[1], got)
		}
	}
}

func TestCapacitanceFormula(t *testing.T) {
	testCases := []struct {
		f      uint32
		r1, r2 float64
	}{
		{1, 1000, 1000},
		{1000, 1000, 1000},
		{65636, 1000, 1000},
		{440, 4700, 10000},
		{4294967295, 1, 1},
	}

	for _, tc := range testCases {
		want := 1.44 / ((tc.r1 + 2*tc.r2) * float64(tc.f))
		got := Capacitance(tc.f, tc.r1, tc.r2)
		if math.Abs(got-want) > want*1e-12 {
			t.Errorf("Capacitance(%d, %v, %v) = %v, expected %v", tc.f, tc.r1, tc.r2, got, want)
		}
	}
}

func TestCapacitanceReferencePoint(t *testing.T) {
	cfg := DefaultConfig()
	c := cfg.Estimate(Measurement{FrequencyHz: 1000})

	if math.Abs(c.Farads-4.8e-7) > 1e-18 {
		t.Errorf("expected 4.8e-7 F, got %v", c.Farads)
	}
	if c.String() != "0.48 uF" {
		t.Errorf("expected \"0.48 uF\", got %q", c.String())
	}
}

func TestCapacitanceString(t *testing.T) {
	testCases := []struct {
		farads float64
		want   string
	}{
		{0, "0.00 uF"},
		{4.8e-7, "0.48 uF"},
		{1e-6, "1.00 uF"},
		{2.2e-5, "22.00 uF"},
		{4.7e-9, "0.00 uF"},
		{1.2345e-3, "1234.50 uF"},
	}

	for _, tc := range testCases {
		got := CapacitanceEstimate{Farads: tc.farads}.String()
		if got != tc.want {
			t.Errorf("%v F: expected %q, got %q", tc.farads, tc.want, got)
		}
	}
}

func TestCapacitanceStringRoundsLikePrintf(t *testing.T) {
	// values on or just below a hundredth boundary at 1k/1k
	testCases := []struct {
		f    uint32
		want string
	}{
		{768, "0.62 uF"},   // 0.625 exactly, ties to even
		{3840, "0.12 uF"},  // 0.125
		{19200, "0.02 uF"}, // 0.024999...
		{32000, "0.01 uF"}, // 0.014999...
		{1000, "0.48 uF"},
	}

	cfg := DefaultConfig()
	for _, tc := range testCases {
		got := cfg.Estimate(Measurement{FrequencyHz: tc.f}).String()
		if got != tc.want {
			t.Errorf("f=%d: expected %q, got %q", tc.f, tc.want, got)
		}
	}
}
