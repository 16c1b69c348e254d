package pms700x

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icewind1991/pms700x/protocol"
)

// fakeUART implements drivers.UART backed by in-memory buffers.
type fakeUART struct {
	rx []byte
	tx []byte
}

func (u *fakeUART) Read(p []byte) (int, error) {
	n := copy(p, u.rx)
	u.rx = u.rx[n:]
	return n, nil
}

func (u *fakeUART) Write(p []byte) (int, error) {
	u.tx = append(u.tx, p...)
	return len(p), nil
}

func (u *fakeUART) Buffered() int {
	return len(u.rx)
}

func TestUARTTransport(t *testing.T) {
	uart := &fakeUART{}
	tr := UARTTransport(uart)

	// an empty receive buffer maps to would-block instead of a blocking
	// ReadByte call
	_, err := tr.ReadByte()
	require.ErrorIs(t, err, protocol.ErrWouldBlock)

	uart.rx = []byte{0x42, 0x4D}
	for _, want := range []byte{0x42, 0x4D} {
		b, err := tr.ReadByte()
		require.NoError(t, err)
		assert.Equal(t, want, b)
	}
	_, err = tr.ReadByte()
	require.ErrorIs(t, err, protocol.ErrWouldBlock)

	require.NoError(t, tr.WriteByte(0xE1))
	require.NoError(t, tr.Flush())
	assert.Equal(t, []byte{0xE1}, uart.tx)
}

func TestNewUART(t *testing.T) {
	uart := &fakeUART{rx: modeAck(0)}

	sensor, err := NewUART(uart).IntoPassive()
	require.NoError(t, err)
	require.NotNil(t, sensor)
	assert.Equal(t, commandFrame(protocol.CmdSetMode, 0), uart.tx)
}
