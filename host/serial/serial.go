// Package serial opens the meter's text output link on the host
package serial

import (
	"io"
)

// Port is the host side of the meter's serial link.
// Implementations: native (github.com/tarm/serial) and in-memory pipes in tests.
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (USB CDC ignores this)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultBaud is the meter firmware's UART rate
const DefaultBaud = 115200

// DefaultConfig returns the configuration matching the firmware
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        DefaultBaud,
		ReadTimeout: 0, // measurements arrive once per second
	}
}
