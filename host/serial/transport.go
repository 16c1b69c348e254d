package serial

import (
	"github.com/icewind1991/pms700x/protocol"
)

// Transport adapts a Port to the driver's non-blocking byte transport.
// Received bytes are staged in a ring buffer so one chunked read from
// the port serves many single-byte driver steps; a timed-out port read
// that yields nothing maps to protocol.ErrWouldBlock.
type Transport struct {
	port    Port
	rx      Fifo
	scratch [64]byte
	one     [1]byte
}

// NewTransport wraps an open port. The port's read timeout should be
// short (see DefaultConfig) or driver polls will stall in the port read.
func NewTransport(port Port) *Transport {
	return &Transport{port: port}
}

// ReadByte returns the next received byte, refilling the ring from the
// port when it runs dry.
func (t *Transport) ReadByte() (byte, error) {
	if t.rx.IsEmpty() {
		limit := t.rx.Free()
		if limit > len(t.scratch) {
			limit = len(t.scratch)
		}
		n, err := t.port.Read(t.scratch[:limit])
		if n > 0 {
			t.rx.Write(t.scratch[:n])
		} else if err != nil {
			return 0, err
		} else {
			// read timed out with nothing buffered
			return 0, protocol.ErrWouldBlock
		}
	}

	t.rx.Read(t.one[:])
	return t.one[0], nil
}

// WriteByte hands one byte to the port. Serial ports accept writes at
// line rate, so there is no would-block path on the transmit side.
func (t *Transport) WriteByte(b byte) error {
	t.one[0] = b
	_, err := t.port.Write(t.one[:])
	return err
}

// Flush delegates to the port.
func (t *Transport) Flush() error {
	return t.port.Flush()
}
