package serial

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFifoWriteRead(t *testing.T) {
	var f Fifo

	assert.True(t, f.IsEmpty())
	assert.Equal(t, 0, f.Available())
	assert.Equal(t, FifoSize-1, f.Free())

	require.Equal(t, 5, f.Write([]byte{1, 2, 3, 4, 5}))
	assert.Equal(t, 5, f.Available())
	assert.False(t, f.IsEmpty())

	out := make([]byte, 3)
	require.Equal(t, 3, f.Read(out))
	assert.Equal(t, []byte{1, 2, 3}, out)
	assert.Equal(t, 2, f.Available())

	require.Equal(t, 2, f.Read(out))
	assert.Equal(t, []byte{4, 5}, out[:2])
	assert.True(t, f.IsEmpty())
}

func TestFifoWrapAround(t *testing.T) {
	var f Fifo
	chunk := bytes.Repeat([]byte{0xAB}, FifoSize/2)

	// push the read/write cursors past the end of the backing array
	for i := 0; i < 5; i++ {
		require.Equal(t, len(chunk), f.Write(chunk))
		out := make([]byte, len(chunk))
		require.Equal(t, len(chunk), f.Read(out))
		assert.Equal(t, chunk, out)
	}
	assert.True(t, f.IsEmpty())
}

func TestFifoFull(t *testing.T) {
	var f Fifo
	data := bytes.Repeat([]byte{0x42}, FifoSize+10)

	// one slot stays free to distinguish full from empty
	assert.Equal(t, FifoSize-1, f.Write(data))
	assert.Equal(t, 0, f.Free())
	assert.Equal(t, 0, f.Write([]byte{0xFF}))

	f.Reset()
	assert.True(t, f.IsEmpty())
	assert.Equal(t, FifoSize-1, f.Free())
}
