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
	"runtime"
)

// Sync waits until every bus cycle issued through the Port so far has been
// dispatched and the slow path has completed a pass since. It should be
// called by the host after a write or after a read of a data register, if
// the host needs to see the effect of the bus cycle.
//
// The fast path and the slow path must be running in other goroutines.
func (dev *Device) Sync(ctx context.Context) error {
	target := dev.port.Words()
	if err := wait(ctx, func() bool { return dev.Engine.Serviced() >= target }); err != nil {
		return err
	}
	if err := wait(ctx, func() bool { return dev.events.Len() == 0 }); err != nil {
		return err
	}
	return dev.WaitPass(ctx)
}

// WaitPass waits until the slow path has completed a pass that started after
// the call to WaitPass(). Unlike Sync() it can be used while the host is held
// in reset.
func (dev *Device) WaitPass(ctx context.Context) error {
	pass := dev.passes.Load()
	return wait(ctx, func() bool { return dev.passes.Load() > pass+1 })
}

func wait(ctx context.Context, cond func() bool) error {
	done := ctx.Done()
	for !cond() {
		select {
		case <-done:
			return ctx.Err()
		default:
		}
		runtime.Gosched()
	}
	return nil
}

// Passes returns the number of completed passes of the slow path.
func (dev *Device) Passes() uint64 {
	return dev.passes.Load()
}
