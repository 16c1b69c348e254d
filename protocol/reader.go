package protocol

// FrameReader collects one incoming response frame at a time, one byte
// per Fill call, resynchronizing on anything that is not valid framing.
// It keeps O(1) state so transient garbage on the wire (power-up noise,
// mode-switch debris) is scanned past without dynamic buffering.
//
// The reader persists across frames: completing a frame resets the
// cursor for the next cycle while leaving the buffer populated for the
// caller to validate and decode.
type FrameReader struct {
	offset uint8
	length uint8
	data   Frame
}

// Fill consumes exactly one byte from t. It returns nil when that byte
// completes a frame, ErrWouldBlock while a frame is still incomplete
// (including every resynchronization on bad framing), and transport
// errors verbatim.
func (r *FrameReader) Fill(t Transport) error {
	b, err := t.ReadByte()
	if err != nil {
		return err
	}

	offset := r.offset
	r.offset++
	r.data[offset] = b

	switch offset {
	case 0:
		if b != StartHeader1 {
			// keep scanning for the start header
			r.offset = 0
		}
	case 1:
		if b != StartHeader2 {
			r.offset = 0
		}
	case 2:
		// declared lengths never need the high byte
		if b != 0 {
			r.offset = 0
		}
	case 3:
		r.length = b
		if r.length > MaxResponseSize {
			r.offset = 0
		}
	default:
		if offset >= r.length+3 {
			r.offset = 0
			return nil
		}
	}
	return ErrWouldBlock
}

// Validate checks the collected frame against its trailing checksum: the
// wrap-around sum of everything from the first header byte through the
// last payload byte, compared to the big-endian 16-bit value stored
// right after. A mismatch means the frame is corrupt, which callers
// treat as "not ready" rather than an error.
func (r *FrameReader) Validate() bool {
	end := int(r.length) + 2
	sum := Checksum(r.data[:end])
	checksum := uint16(r.data[end])<<8 | uint16(r.data[end+1])
	return sum == checksum
}

// Data exposes the frame buffer. Its contents are only meaningful right
// after Fill reported a complete frame.
func (r *FrameReader) Data() *Frame {
	return &r.data
}

// Reset discards any partially collected frame. Callers that abandon a
// poll sequence mid-frame and want a clean restart must call this;
// otherwise the next Fill resumes at the old cursor.
func (r *FrameReader) Reset() {
	r.offset = 0
	r.length = 0
}
