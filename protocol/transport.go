package protocol

import "errors"

// ErrWouldBlock reports that a non-blocking operation made no progress
// and must be retried later. It is not a failure: transports return it
// when no byte can be moved right now, and the protocol state machines
// return it while a frame is still incomplete.
var ErrWouldBlock = errors.New("would block")

// Transport is the byte-oriented serial channel the driver is given.
// Implementations must be non-blocking: when no byte can be moved they
// return ErrWouldBlock rather than suspending the caller. Any other
// error is treated as opaque and propagated verbatim.
type Transport interface {
	// ReadByte returns the next received byte, or ErrWouldBlock when
	// nothing is buffered yet.
	ReadByte() (byte, error)

	// WriteByte hands one byte to the transmit path, or returns
	// ErrWouldBlock when it cannot be accepted right now.
	WriteByte(b byte) error

	// Flush pushes any queued output towards the device.
	Flush() error
}
