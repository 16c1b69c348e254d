package pms700x

import (
	"errors"

	"github.com/icewind1991/pms700x/protocol"
)

// ErrConsumed reports a call through a sensor handle that was already
// consumed by a mode transition.
var ErrConsumed = errors.New("pms700x: sensor handle consumed by a mode transition")

// UninitializedSensor is a freshly constructed driver whose sensor mode
// has not been established yet. Transition it with IntoActive or
// IntoPassive before reading.
type UninitializedSensor struct {
	d *device
}

// ActiveSensor drives a sensor in active mode: the sensor broadcasts
// measurement frames continuously and Read collects them as they arrive.
type ActiveSensor struct {
	d *device
}

// PassiveSensor drives a sensor in passive mode: the sensor only answers
// explicit read commands.
type PassiveSensor struct {
	d *device
}

// New wraps transport in a driver with no established mode. The driver
// takes exclusive ownership of the transport.
func New(transport protocol.Transport) *UninitializedSensor {
	return &UninitializedSensor{d: &device{transport: transport}}
}

// take consumes the handle's core. Transition methods call it first so a
// stale handle fails fast instead of aliasing the transitioned driver.
func (u *UninitializedSensor) take() (*device, error) {
	if u.d == nil {
		return nil, ErrConsumed
	}
	d := u.d
	u.d = nil
	return d, nil
}

// IntoActive switches the sensor into active (continuous broadcast) mode
// and consumes the receiver; afterwards only the returned handle is
// usable. As a convenience it polls internally until the mode command
// and its response frame complete, so it blocks the caller until then.
func (u *UninitializedSensor) IntoActive() (*ActiveSensor, error) {
	d, err := u.take()
	if err != nil {
		return nil, err
	}
	if err := block(func() error {
		return d.sendCommand(protocol.CmdSetMode, 1, true)
	}); err != nil {
		return nil, err
	}
	return &ActiveSensor{d: d}, nil
}

// IntoPassive switches the sensor into passive (on-demand) mode and
// consumes the receiver. Wait 30-50ms after the switch before the first
// read or the sensor will not respond. Like IntoActive it polls
// internally until the transition completes.
func (u *UninitializedSensor) IntoPassive() (*PassiveSensor, error) {
	d, err := u.take()
	if err != nil {
		return nil, err
	}
	if err := block(func() error {
		return d.sendCommand(protocol.CmdSetMode, 0, true)
	}); err != nil {
		return nil, err
	}
	return &PassiveSensor{d: d}, nil
}

// SetSleeping puts the sensor to sleep or wakes it. Non-blocking: poll
// until it stops returning protocol.ErrWouldBlock.
func (u *UninitializedSensor) SetSleeping(sleeping SleepSetting) error {
	if u.d == nil {
		return ErrConsumed
	}
	return u.d.setSleeping(sleeping)
}

// SetSleeping puts the sensor to sleep or wakes it. Non-blocking: poll
// until it stops returning protocol.ErrWouldBlock.
func (a *ActiveSensor) SetSleeping(sleeping SleepSetting) error {
	return a.d.setSleeping(sleeping)
}

// SetSleeping puts the sensor to sleep or wakes it. Non-blocking: poll
// until it stops returning protocol.ErrWouldBlock.
func (p *PassiveSensor) SetSleeping(sleeping SleepSetting) error {
	return p.d.setSleeping(sleeping)
}

// Read collects whatever broadcast bytes have arrived, one per call, and
// returns a measurement once a complete frame is buffered and passes
// checksum validation. Until then it returns protocol.ErrWouldBlock;
// corrupt frames are silently discarded while the reader resynchronizes,
// they are never surfaced as errors.
func (a *ActiveSensor) Read() (protocol.SensorData, error) {
	if err := a.d.reader.Fill(a.d.transport); err != nil {
		return protocol.SensorData{}, err
	}
	if !a.d.reader.Validate() {
		return protocol.SensorData{}, protocol.ErrWouldBlock
	}
	return protocol.SensorDataFromRaw(a.d.reader.Data()), nil
}

// Read requests a measurement on demand: it drives a ReadPassive command
// and collects the forced response, one transport step per call,
// returning protocol.ErrWouldBlock until the cycle completes. The
// response was already framed by the collect cycle and is decoded
// directly from the buffer.
func (p *PassiveSensor) Read() (protocol.SensorData, error) {
	if err := p.d.sendCommand(protocol.CmdReadPassive, 0, true); err != nil {
		return protocol.SensorData{}, err
	}
	return protocol.SensorDataFromRaw(p.d.reader.Data()), nil
}
