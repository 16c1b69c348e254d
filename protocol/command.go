package protocol

// CommandWriter serializes one outgoing command into its fixed 7-byte
// frame, one byte per Step call. A writer is armed once per command and
// cleared after the frame is fully sent, so a second command can never
// interleave with one still in flight.
type CommandWriter struct {
	command  Command
	dataHigh byte
	dataLow  byte
	sumHigh  byte
	sumLow   byte
	cursor   uint8
}

// NewCommandWriter arms a writer for command with the given 16-bit
// payload. The payload and the checksum over the five leading frame
// bytes both go out big-endian.
func NewCommandWriter(command Command, payload uint16) CommandWriter {
	sum := uint16(StartHeader1) + uint16(StartHeader2) + uint16(command) +
		(payload >> 8) + (payload & 0xFF)
	return CommandWriter{
		command:  command,
		dataHigh: byte(payload >> 8),
		dataLow:  byte(payload),
		sumHigh:  byte(sum >> 8),
		sumLow:   byte(sum),
	}
}

// Command returns the command this writer is armed with, or CmdNone when
// the slot is idle.
func (w *CommandWriter) Command() Command {
	return w.command
}

// Clear idles the command slot so the next command can be armed.
func (w *CommandWriter) Clear() {
	w.command = CmdNone
}

// Step hands the next pending frame byte to t. The cursor only advances
// when the transport accepts the byte; a rejected byte is retried on the
// next call. Step returns nil once all 7 bytes have been sent,
// ErrWouldBlock while the frame is incomplete, and transport errors
// verbatim.
func (w *CommandWriter) Step(t Transport) error {
	if w.cursor < CommandSize {
		var b byte
		switch w.cursor {
		case 0:
			b = StartHeader1
		case 1:
			b = StartHeader2
		case 2:
			b = byte(w.command)
		case 3:
			b = w.dataHigh
		case 4:
			b = w.dataLow
		case 5:
			b = w.sumHigh
		case 6:
			b = w.sumLow
		}
		if err := t.WriteByte(b); err != nil {
			return err
		}
		w.cursor++
	}

	if w.cursor == CommandSize {
		return nil
	}
	return ErrWouldBlock
}
