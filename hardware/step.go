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
	"github.com/jetsetilly/periphery/logger"
	"github.com/jetsetilly/periphery/notifications"
)

// Step performs one pass of the slow path. Returns the number of events that
// were dispatched.
//
// Events are dispatched before the state machines are stepped so that a
// request made by the host is acted upon in the same pass. The reset
// controller is always first and while the host is held in reset nothing else
// happens.
func (dev *Device) Step() int {
	defer dev.passes.Add(1)

	if dev.Reset.Step() {
		return 0
	}

	n := dev.DispatchEvents()

	dev.ROM.Step()
	dev.Console.Step()
	dev.Aux.Step()
	dev.LED.Step()
	dev.IRQ.Step()

	return n
}

// DispatchEvents dispatches the events waiting in the queue without stepping
// the state machines. Dispatching is bounded by the capacity of the queue.
// Returns the number of events dispatched.
//
// Should only be called from the slow path.
func (dev *Device) DispatchEvents() int {
	n := dev.Dispatcher.Drain(dev.events, dev.events.Cap())

	if d := dev.events.Dropped(); d > 0 {
		logger.Logf(dev.env, logTag, "event queue overflow: dropped %d events", d)
		dev.env.Notify.Notify(notifications.NotifyEventsDropped, d)
	}

	return n
}
