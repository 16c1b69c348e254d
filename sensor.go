// Package pms700x is a driver for the Plantower PMS700X family of laser
// particulate-matter sensors, which talk a small binary framing protocol
// over a byte-oriented serial line.
//
// The driver is single-threaded and non-blocking: every operation that
// touches the transport returns either a completed result, an opaque
// transport error, or protocol.ErrWouldBlock when it made no progress
// yet. That makes it embeddable in an external polling loop or a single
// task of a cooperative scheduler; the driver itself has no timers,
// no retries and no notion of elapsed time.
//
// Which operations are available depends on the sensor mode. New returns
// an UninitializedSensor; IntoActive and IntoPassive consume it and hand
// back a handle exposing only the operations legal in that mode.
package pms700x

import (
	"github.com/icewind1991/pms700x/protocol"
)

// SleepSetting selects between sleeping the sensor and waking it.
type SleepSetting uint16

const (
	// Sleep puts the sensor into low-power sleep. It cannot be read
	// until woken again.
	Sleep SleepSetting = 0
	// Wakeup brings the sensor out of sleep. Wait about 30s afterwards
	// before reading so the fan and laser stabilize.
	Wakeup SleepSetting = 1
)

// device is the mode-independent driver core: the exclusively owned
// transport plus exactly one in-flight command and one in-flight
// response frame. There is no queue; a second command cannot start until
// the current one finishes.
type device struct {
	transport protocol.Transport
	writer    protocol.CommandWriter
	reader    protocol.FrameReader
}

// sendCommand drives one command/response cycle a single step at a time.
// It arms the writer when the command slot is idle, transmits the next
// pending frame byte, flushes, and, for commands that force a response,
// collects the next response byte. The command slot is only cleared once
// the whole cycle completed, so overlapping commands are structurally
// impossible. Returns protocol.ErrWouldBlock until the cycle completes.
func (d *device) sendCommand(command protocol.Command, payload uint16, expectAnswer bool) error {
	if d.writer.Command() == protocol.CmdNone {
		d.writer = protocol.NewCommandWriter(command, payload)
	}

	if err := d.writer.Step(d.transport); err != nil {
		return err
	}
	if err := d.transport.Flush(); err != nil {
		return err
	}
	if expectAnswer {
		if err := d.reader.Fill(d.transport); err != nil {
			return err
		}
	}

	d.writer.Clear()
	return nil
}

func (d *device) setSleeping(sleeping SleepSetting) error {
	// only the sleep direction answers with a frame; a waking sensor is
	// still booting and cannot be read from
	return d.sendCommand(protocol.CmdSetSleep, uint16(sleeping), sleeping == Sleep)
}

// block polls a non-blocking step until it completes or fails with a
// transport error.
func block(step func() error) error {
	for {
		err := step()
		if err == protocol.ErrWouldBlock {
			continue
		}
		return err
	}
}
