package serial

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// nativePort backs Port with github.com/tarm/serial.
type nativePort struct {
	port *serial.Port
}

// Open opens the serial device described by cfg. The configured read
// timeout doubles as the poll interval of the driver's would-block
// reads, so sensible configs keep it in the low tens of milliseconds.
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}

	return &nativePort{port: port}, nil
}

// Read reads received data. A timed-out read returns 0 bytes and no
// error, which is what Transport maps to would-block.
func (p *nativePort) Read(b []byte) (int, error) {
	return p.port.Read(b)
}

func (p *nativePort) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

func (p *nativePort) Close() error {
	return p.port.Close()
}

func (p *nativePort) Flush() error {
	// tarm/serial writes synchronously, there is nothing left to push
	return nil
}
