package serial

// FifoSize is the capacity of the receive ring. It comfortably holds a
// few measurement frames between polls at 9600 baud.
const FifoSize = 128

// Fifo is a fixed-capacity byte ring used to stage received serial data
// so one chunked port read can serve many single-byte driver steps.
// The zero value is an empty ring. One slot is sacrificed to tell a full
// ring from an empty one.
type Fifo struct {
	buf   [FifoSize]byte
	read  int
	write int
}

// Write appends data to the ring, returning how many bytes fit.
func (f *Fifo) Write(data []byte) int {
	written := 0
	for _, b := range data {
		next := (f.write + 1) % FifoSize
		if next == f.read {
			// ring full
			break
		}
		f.buf[f.write] = b
		f.write = next
		written++
	}
	return written
}

// Read copies up to len(data) bytes out of the ring, returning how many
// were copied.
func (f *Fifo) Read(data []byte) int {
	read := 0
	for i := range data {
		if f.read == f.write {
			// ring empty
			break
		}
		data[i] = f.buf[f.read]
		f.read = (f.read + 1) % FifoSize
		read++
	}
	return read
}

// Available returns the number of buffered bytes.
func (f *Fifo) Available() int {
	if f.write >= f.read {
		return f.write - f.read
	}
	return FifoSize - f.read + f.write
}

// Free returns how many more bytes the ring can take.
func (f *Fifo) Free() int {
	return FifoSize - f.Available() - 1
}

// IsEmpty reports whether no bytes are buffered.
func (f *Fifo) IsEmpty() bool {
	return f.read == f.write
}

// Reset discards all buffered bytes.
func (f *Fifo) Reset() {
	f.read = 0
	f.write = 0
}
