// Package stream pumps sensor readings into a channel so host programs
// can consume measurements with ordinary channel operations instead of
// driving the poll loop themselves.
package stream

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/icewind1991/pms700x/protocol"
)

// Reader is a non-blocking measurement source. Both *pms700x.ActiveSensor
// and *pms700x.PassiveSensor satisfy it.
type Reader interface {
	Read() (protocol.SensorData, error)
}

// Stream delivers readings from a polled sensor over a channel.
type Stream struct {
	readings chan protocol.SensorData
}

// New creates an idle Stream; call Run to start delivering readings.
func New() *Stream {
	return &Stream{
		readings: make(chan protocol.SensorData),
	}
}

// Readings returns the channel measurements are delivered on. It is
// closed when Run returns.
func (s *Stream) Readings() <-chan protocol.SensorData {
	return s.readings
}

// Run polls r every interval until ctx is cancelled or the transport
// fails, forwarding each completed reading to Readings. Would-block
// polls are skipped silently. The driver consumes one byte per poll, so
// keep interval at or below the line's byte period (about 1ms at 9600
// baud) or frames will trickle in slowly.
func (s *Stream) Run(ctx context.Context, r Reader, interval time.Duration) error {
	defer close(s.readings)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}

			data, err := r.Read()
			if errors.Is(err, protocol.ErrWouldBlock) {
				continue
			}
			if err != nil {
				return err
			}

			select {
			case s.readings <- data:
			case <-ctx.Done():
				return nil
			}
		}
	})
	return group.Wait()
}
