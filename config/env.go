package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"capmeter/core"
)

// Environment variables understood by LoadEnv
const (
	EnvClockHz = "CAPMETER_CLOCK_HZ"
	EnvR1      = "CAPMETER_R1"
	EnvR2      = "CAPMETER_R2"
	EnvDevice  = "CAPMETER_DEVICE"
	EnvBaud    = "CAPMETER_BAUD"
)

// LoadEnv reads the given .env files (missing files are skipped) into the
// process environment without overriding variables already set.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg fields from CAPMETER_* variables. It only reports
// unparsable values; validate the final configuration with cfg.Validate.
func ApplyEnv(cfg *core.Config) error {
	if v, ok := os.LookupEnv(EnvClockHz); ok {
		hz, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvClockHz, err)
		}
		cfg.ClockHz = uint32(hz)
	}
	if v, ok := os.LookupEnv(EnvR1); ok {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvR1, err)
		}
		cfg.R1 = r
	}
	if v, ok := os.LookupEnv(EnvR2); ok {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvR2, err)
		}
		cfg.R2 = r
	}
	return nil
}

// Device returns the serial device from the environment, or fallback
func Device(fallback string) string {
	if v := os.Getenv(EnvDevice); v != "" {
		return v
	}
	return fallback
}

// Baud returns the serial baud rate from the environment, or fallback
func Baud(fallback int) int {
	if v := os.Getenv(EnvBaud); v != "" {
		if b, err := strconv.Atoi(v); err == nil && b > 0 {
			return b
		}
	}
	return fallback
}
