// Package serial connects the driver to a physical serial port on a
// host system (a Raspberry Pi, a desktop with a USB adapter, ...).
package serial

import (
	"io"
)

// Port represents a serial port.
// This abstraction allows for different implementations:
// - Native serial (using github.com/tarm/serial)
// - Mock serial (for testing)
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyAMA0", "COM3")
	Device string

	// Baud rate; the PMS700X family talks 9600 8N1
	Baud int

	// Read timeout in milliseconds. Keep it short: a timed-out read is
	// what the transport maps to the driver's would-block signal.
	ReadTimeout int
}

// DefaultConfig returns the manufacturer-default configuration for a
// PMS700X sensor on the given device.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        9600,
		ReadTimeout: 20,
	}
}
