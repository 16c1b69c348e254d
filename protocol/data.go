package protocol

import "encoding/binary"

// SensorData is one decoded particulate-matter measurement. All
// concentrations are in µg/m³, all particle counts are per 0.1L of air.
type SensorData struct {
	// Pm10Std is the PM1.0 concentration corrected for standard atmosphere
	Pm10Std uint16
	// Pm25Std is the PM2.5 concentration corrected for standard atmosphere
	Pm25Std uint16
	// Pm100Std is the PM10 concentration corrected for standard atmosphere
	Pm100Std uint16
	// Pm10Env is the PM1.0 concentration in the current atmosphere
	Pm10Env uint16
	// Pm25Env is the PM2.5 concentration in the current atmosphere
	Pm25Env uint16
	// Pm100Env is the PM10 concentration in the current atmosphere
	Pm100Env uint16
	// Particles3um counts particles with diameter beyond 0.3µm
	Particles3um uint16
	// Particles5um counts particles with diameter beyond 0.5µm
	Particles5um uint16
	// Particles10um counts particles with diameter beyond 1.0µm
	Particles10um uint16
	// Particles25um counts particles with diameter beyond 2.5µm
	Particles25um uint16
	// Particles50um counts particles with diameter beyond 5.0µm
	Particles50um uint16
	// Particles100um counts particles with diameter beyond 10.0µm
	Particles100um uint16
}

// SensorDataFromRaw decodes a measurement from a collected frame: twelve
// big-endian 16-bit fields at fixed offsets 4-27. The 13th data word of
// a measurement frame is reserved and not decoded. It performs no
// validation; call it only after FrameReader.Validate succeeded.
func SensorDataFromRaw(raw *Frame) SensorData {
	return SensorData{
		Pm10Std:        binary.BigEndian.Uint16(raw[4:6]),
		Pm25Std:        binary.BigEndian.Uint16(raw[6:8]),
		Pm100Std:       binary.BigEndian.Uint16(raw[8:10]),
		Pm10Env:        binary.BigEndian.Uint16(raw[10:12]),
		Pm25Env:        binary.BigEndian.Uint16(raw[12:14]),
		Pm100Env:       binary.BigEndian.Uint16(raw[14:16]),
		Particles3um:   binary.BigEndian.Uint16(raw[16:18]),
		Particles5um:   binary.BigEndian.Uint16(raw[18:20]),
		Particles10um:  binary.BigEndian.Uint16(raw[20:22]),
		Particles25um:  binary.BigEndian.Uint16(raw[22:24]),
		Particles50um:  binary.BigEndian.Uint16(raw[24:26]),
		Particles100um: binary.BigEndian.Uint16(raw[26:28]),
	}
}
