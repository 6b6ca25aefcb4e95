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

package hardware

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jetsetilly/periphery/logger"
)

// FastPath runs the bus engine until the context is done. It should be run in
// its own goroutine.
func (dev *Device) FastPath(ctx context.Context) error {
	return dev.Engine.Run(ctx)
}

// SlowPath runs the slow path until the context is done. It should be run in
// its own goroutine. The goroutine yields to the scheduler after every pass in
// which no events were dispatched.
func (dev *Device) SlowPath(ctx context.Context) error {
	defer dev.events.Release()

	done := ctx.Done()
	for {
		select {
		case <-done:
			return ctx.Err()
		default:
		}

		if dev.Step() == 0 {
			runtime.Gosched()
		}
	}
}

// Run the fast path and the slow path in their own goroutines until the
// context is done. Returns nil if the context was cancelled.
func (dev *Device) Run(ctx context.Context) error {
	logger.Logf(dev.env, logTag, "running: host clock %s", dev.HostClock)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return dev.FastPath(ctx)
	})
	g.Go(func() error {
		return dev.SlowPath(ctx)
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
