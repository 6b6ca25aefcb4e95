// This file is part of Periphery.
//
// Periphery is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Periphery is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Periphery.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/periphery/environment"
	"github.com/jetsetilly/periphery/hardware"
	"github.com/jetsetilly/periphery/hardware/registers"
)

// the number of bus cycles between checks of the clock
const brake = 1024

// Result of a performance check.
type Result struct {
	Duration time.Duration

	// bus cycles written by the host and serviced by the fast path
	Cycles uint64

	// events that reached the register store through the dispatcher. the
	// difference between Cycles and Dispatched is the number of events
	// dropped because the queue was full
	Dispatched uint64

	// passes of the slow path
	Passes uint64
}

func (r Result) String() string {
	secs := r.Duration.Seconds()
	return fmt.Sprintf("%d bus cycles in %.2f seconds (%.0f/s). %d dispatched (%.1f%%). %.0f passes/s",
		r.Cycles, secs, float64(r.Cycles)/secs,
		r.Dispatched, 100*float64(r.Dispatched)/float64(max(r.Cycles, 1)),
		float64(r.Passes)/secs)
}

// Check the performance of the device by acting as a host that writes to the
// vectors region as quickly as the fast path allows. The check ends when
// the duration has elapsed or the context is done. The result is written to
// output.
//
// The device must not be running. It will not be running when Check()
// returns.
func Check(ctx context.Context, output io.Writer, dev *hardware.Device, profile Profile, duration time.Duration) (Result, error) {
	var res Result

	// the device runs on its own context so that it is always running while
	// the host is writing. a write to the port blocks until the fast path
	// has room for it
	devCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	port := dev.Port()
	startCycles := dev.Engine.Serviced()
	startDispatched := dev.Dispatcher.Stats.PassThrough
	startPasses := dev.Passes()

	done := make(chan error, 1)
	go func() {
		done <- dev.Run(devCtx)
	}()

	err := RunProfiler(profile, "performance", func() error {
		start := time.Now()
		deadline := start.Add(duration)

		var v uint8
		for ctx.Err() == nil {
			for i := 0; i < brake; i++ {
				port.Write(registers.VectorsOrigin+uint16(v&0x1f), v)
				v++
			}
			if !time.Now().Before(deadline) {
				break
			}
		}

		res.Duration = time.Since(start)
		return nil
	})

	// wait for the fast path before stopping the device. the slow path might
	// not have dispatched every event but the count of dispatched events is
	// only examined after the device has stopped
	for dev.Engine.Serviced() < port.Words() && ctx.Err() == nil {
		time.Sleep(time.Millisecond)
	}

	cancel()
	if derr := <-done; err == nil {
		err = derr
	}
	if err != nil {
		return Result{}, err
	}

	res.Cycles = dev.Engine.Serviced() - startCycles
	res.Dispatched = uint64(dev.Dispatcher.Stats.PassThrough - startDispatched)
	res.Passes = dev.Passes() - startPasses

	fmt.Fprintln(output, res)

	return res, nil
}

// NewCheckDevice creates a device suitable for Check(). The device has no
// transports and no images.
func NewCheckDevice(env *environment.Environment) (*hardware.Device, error) {
	return hardware.NewDevice(env, hardware.Transports{}, hardware.Images{})
}
