package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSensorDataFromRaw(t *testing.T) {
	var raw Frame
	for i := 0; i < 12; i++ {
		// distinct big-endian values at offsets 4..27
		raw[4+2*i] = byte(i + 1)
		raw[5+2*i] = byte(0x10 * (i + 1))
	}
	// header, length, reserved word and checksum bytes are not decoded
	raw[0], raw[1] = StartHeader1, StartHeader2
	raw[28], raw[29] = 0xDE, 0xAD

	data := SensorDataFromRaw(&raw)

	assert.Equal(t, uint16(0x0110), data.Pm10Std)
	assert.Equal(t, uint16(0x0220), data.Pm25Std)
	assert.Equal(t, uint16(0x0330), data.Pm100Std)
	assert.Equal(t, uint16(0x0440), data.Pm10Env)
	assert.Equal(t, uint16(0x0550), data.Pm25Env)
	assert.Equal(t, uint16(0x0660), data.Pm100Env)
	assert.Equal(t, uint16(0x0770), data.Particles3um)
	assert.Equal(t, uint16(0x0880), data.Particles5um)
	assert.Equal(t, uint16(0x0990), data.Particles10um)
	assert.Equal(t, uint16(0x0AA0), data.Particles25um)
	assert.Equal(t, uint16(0x0BB0), data.Particles50um)
	assert.Equal(t, uint16(0x0CC0), data.Particles100um)
}
