package protocol

import "encoding/binary"

// testTransport is a scripted in-memory Transport: reads are served from
// rx until it runs dry, writes are recorded in tx. With stutter set,
// every other write is rejected with ErrWouldBlock to mimic a full
// transmit path.
type testTransport struct {
	rx      []byte
	tx      []byte
	flushes int

	stutter  bool
	writes   int
	writeErr error
	readErr  error
}

func (t *testTransport) ReadByte() (byte, error) {
	if t.readErr != nil {
		return 0, t.readErr
	}
	if len(t.rx) == 0 {
		return 0, ErrWouldBlock
	}
	b := t.rx[0]
	t.rx = t.rx[1:]
	return b, nil
}

func (t *testTransport) WriteByte(b byte) error {
	if t.writeErr != nil {
		return t.writeErr
	}
	t.writes++
	if t.stutter && t.writes%2 == 1 {
		return ErrWouldBlock
	}
	t.tx = append(t.tx, b)
	return nil
}

func (t *testTransport) Flush() error {
	t.flushes++
	return nil
}

// buildResponseFrame wraps data in valid framing: header, length
// covering data plus checksum, and the trailing big-endian checksum over
// everything before it.
func buildResponseFrame(data []byte) []byte {
	frame := []byte{StartHeader1, StartHeader2, 0, byte(len(data) + 2)}
	frame = append(frame, data...)
	sum := Checksum(frame)
	return binary.BigEndian.AppendUint16(frame, sum)
}

// measurementPayload renders twelve field values as the 26-byte data
// section of a measurement frame (12 fields plus the reserved word).
func measurementPayload(fields [12]uint16) []byte {
	var data []byte
	for _, f := range fields {
		data = binary.BigEndian.AppendUint16(data, f)
	}
	return binary.BigEndian.AppendUint16(data, 0)
}
