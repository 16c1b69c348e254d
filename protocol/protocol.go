// Package protocol implements the Plantower PMS700X wire protocol:
// outgoing command framing, incoming frame collection with
// resynchronization, checksum validation, and measurement decoding.
package protocol

// Frame constants shared by both directions
const (
	StartHeader1 = 0x42 // 'B'
	StartHeader2 = 0x4D // 'M'

	// MaxResponseSize bounds the declared length of an incoming frame
	// (payload plus the two checksum bytes).
	MaxResponseSize = 32

	// CommandSize is the fixed size of an outgoing command frame.
	CommandSize = 7
)

// FrameSize is the largest complete response frame: two header bytes,
// two length bytes and MaxResponseSize bytes of payload and checksum.
const FrameSize = 4 + MaxResponseSize

// Frame holds the raw bytes of one collected response frame.
type Frame [FrameSize]byte

// Command identifies an outgoing host command.
type Command byte

// Command wire codes
const (
	// CmdNone marks an idle command slot; it is never sent on the wire.
	CmdNone        Command = 0x00
	CmdSetMode     Command = 0xE1
	CmdReadPassive Command = 0xE2
	CmdSetSleep    Command = 0xE4
)
