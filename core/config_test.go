package core

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*Config)
		err    error
	}{
		{"default", func(c *Config) {}, nil},
		{"125MHz", func(c *Config) { c.ClockHz = 125000000 }, nil},
		{"1MHz", func(c *Config) { c.ClockHz = 1000000 }, nil},
		{"12.25MHz", func(c *Config) { c.ClockHz = 12250000 }, ErrClockNotWholeMHz},
		{"24.5MHz", func(c *Config) { c.ClockHz = 24500000 }, ErrClockNotWholeMHz},
		{"too slow", func(c *Config) { c.ClockHz = 32768 }, ErrClockTooSlow},
		{"4GHz", func(c *Config) { c.ClockHz = 4000000000 }, nil},
		{"zero r1", func(c *Config) { c.R1 = 0 }, ErrInvalidResistance},
		{"negative r2", func(c *Config) { c.R2 = -10 }, ErrInvalidResistance},
		{"window", func(c *Config) { c.WindowMS = 500 }, ErrWindowFixed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, tc.err) {
				t.Errorf("expected %v, got %v", tc.err, err)
			}
		})
	}
}

func TestTimerReload(t *testing.T) {
	testCases := []struct {
		clock  uint32
		reload uint16
	}{
		{72000000, 0xFFB8},  // -72
		{48000000, 0xFFD0},  // -48
		{125000000, 0xFF83}, // -125
		{1000000, 0xFFFF},   // -1
	}

	for _, tc := range testCases {
		cfg := Config{ClockHz: tc.clock}
		if got := cfg.TimerReload(); got != tc.reload {
			t.Errorf("clock %d: expected reload 0x%04X, got 0x%04X", tc.clock, tc.reload, got)
		}
		// reload + ticks per µs lands exactly on the overflow
		if uint32(cfg.TimerReload())+cfg.TicksPerMicrosecond() != 0x10000 {
			t.Errorf("clock %d: reload does not overflow after one microsecond", tc.clock)
		}
	}
}
