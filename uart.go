package pms700x

import (
	"tinygo.org/x/drivers"

	"github.com/icewind1991/pms700x/protocol"
)

// uartTransport adapts a TinyGo UART to the driver's non-blocking byte
// transport contract.
type uartTransport struct {
	uart drivers.UART
	one  [1]byte
}

// UARTTransport wraps a TinyGo UART (machine.UART on real hardware) as a
// protocol.Transport.
func UARTTransport(uart drivers.UART) protocol.Transport {
	return &uartTransport{uart: uart}
}

// NewUART is shorthand for New(UARTTransport(uart)).
func NewUART(uart drivers.UART) *UninitializedSensor {
	return New(UARTTransport(uart))
}

func (t *uartTransport) ReadByte() (byte, error) {
	// only read when a byte is already buffered; machine.UART reads
	// block otherwise
	if t.uart.Buffered() == 0 {
		return 0, protocol.ErrWouldBlock
	}
	if _, err := t.uart.Read(t.one[:]); err != nil {
		return 0, err
	}
	return t.one[0], nil
}

func (t *uartTransport) WriteByte(b byte) error {
	t.one[0] = b
	_, err := t.uart.Write(t.one[:])
	return err
}

func (t *uartTransport) Flush() error {
	// machine.UART transmits as bytes are written
	return nil
}
